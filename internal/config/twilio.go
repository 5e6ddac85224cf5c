package config

// TwilioConfig controls the SMS gateway and destination number override.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	// TextTo, when set, is used as the destination number without asking
	// the user to dictate one.
	TextTo string
}

func loadTwilio() TwilioConfig {
	return TwilioConfig{
		AccountSID: envOrDefault(envTwilioSID, ""),
		AuthToken:  envOrDefault(envTwilioToken, ""),
		From:       envOrDefault(envTwilioFrom, ""),
		TextTo:     envOrDefault(envTwilioTextTo, ""),
	}
}
