package dialog

// Context is the opaque key-value bag owned by the dialog engine. It is
// replaced wholesale on every round trip; the orchestrator reads and
// writes only the keys below and forwards everything else untouched, so
// engine-owned state is never dropped.
type Context map[string]any

// Keys the orchestrator is allowed to touch.
const (
	KeyMyTeam    = "my_team"
	KeyStandings = "standings"
	KeyEmotion   = "emotion"
	KeyPhoneNo   = "phoneno"
	KeyTextSent  = "text_sent"
)

// Values of KeyTextSent.
const (
	TextSentSuccess = "success"
	TextSentFailure = "failure"
)

const (
	keySystem      = "system"
	keyDialogStack = "dialog_stack"
)

// String returns the string value stored under key, or "".
func (c Context) String(key string) string {
	if c == nil {
		return ""
	}
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}

// Set stores a string value under key.
func (c Context) Set(key, value string) {
	c[key] = value
}

// CurrentStage returns the first element of the engine's dialog stack, or
// "" when the context carries no stage indicator. The engine emits stack
// entries either as plain node names or as {"dialog_node": name} objects.
func (c Context) CurrentStage() string {
	if c == nil {
		return ""
	}
	sys, ok := c[keySystem].(map[string]any)
	if !ok {
		return ""
	}
	stack, ok := sys[keyDialogStack].([]any)
	if !ok || len(stack) == 0 {
		return ""
	}
	switch first := stack[0].(type) {
	case string:
		return first
	case map[string]any:
		if name, ok := first["dialog_node"].(string); ok {
			return name
		}
	}
	return ""
}
