package dialogue

import (
	"encoding/json"
	"time"

	"museum-chat/internal/completion"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Message struct {
	Content string    `json:"content"`
	Sender  Sender    `json:"sender"`
	At      time.Time `json:"at"`
}

// Transcript is an append-only list of messages in insertion order.
type Transcript struct {
	messages []Message
}

func (t *Transcript) Append(m Message) {
	t.messages = append(t.messages, m)
}

func (t *Transcript) Len() int {
	return len(t.messages)
}

// Messages returns a copy of the transcript.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// History converts the last n messages into completion turns. n <= 0 means
// the whole transcript.
func (t *Transcript) History(n int) []completion.Turn {
	msgs := t.messages
	if n > 0 && len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}

	turns := make([]completion.Turn, 0, len(msgs))
	for _, m := range msgs {
		role := completion.RoleUser
		if m.Sender == SenderBot {
			role = completion.RoleAssistant
		}
		turns = append(turns, completion.Turn{Role: role, Content: m.Content})
	}
	return turns
}

func (t Transcript) MarshalJSON() ([]byte, error) {
	if t.messages == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.messages)
}

func (t *Transcript) UnmarshalJSON(data []byte) error {
	var msgs []Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return err
	}
	t.messages = msgs
	return nil
}
