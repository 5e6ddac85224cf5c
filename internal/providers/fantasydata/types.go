package fantasydata

type teamResponse struct {
	Key  string `json:"Key"`
	Name string `json:"Name"`
	City string `json:"City"`
}

type standingResponse struct {
	League   string `json:"League"`
	Division string `json:"Division"`
	Name     string `json:"Name"`
	Wins     int    `json:"Wins"`
	Losses   int    `json:"Losses"`
}

type gameResponse struct {
	GameID   int    `json:"GameID"`
	Day      string `json:"Day"`      // e.g. 2017-09-29T00:00:00
	DateTime string `json:"DateTime"` // e.g. 2017-09-29T19:10:00
	HomeTeam string `json:"HomeTeam"`
	AwayTeam string `json:"AwayTeam"`
	Status   string `json:"Status"`
}
