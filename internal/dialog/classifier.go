package dialog

// Stage labels what kind of user input the dialog script currently expects.
type Stage int

const (
	StageNone Stage = iota
	StageValidateTeam
	StageValidateEmotion
	StageSendNotification
)

// Dialog-node names the conversation script uses for its three active stages.
const (
	nodeValidateTeam    = "Validate Team"
	nodeValidateEmotion = "Validate Emotion"
	nodeTextTeamInfo    = "Text Team Info"
)

// Classify maps the engine's current dialog node to a conversation stage.
// A context without a stage indicator classifies as StageNone.
func Classify(c Context) Stage {
	switch c.CurrentStage() {
	case nodeValidateTeam:
		return StageValidateTeam
	case nodeValidateEmotion:
		return StageValidateEmotion
	case nodeTextTeamInfo:
		return StageSendNotification
	default:
		return StageNone
	}
}

func (s Stage) String() string {
	switch s {
	case StageValidateTeam:
		return "validate_team"
	case StageValidateEmotion:
		return "validate_emotion"
	case StageSendNotification:
		return "send_notification"
	default:
		return "none"
	}
}
