package completion

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry of the history sent to a language model.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
