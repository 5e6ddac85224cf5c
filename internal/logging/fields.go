package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldFeed       = "feed"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldStage      = "stage"
	FieldTeam       = "team"
	FieldMessageID  = "message_id"
)
