package model

import "strings"

// BotMessage is a chatbot request. It is never persisted; it exists only for
// the duration of one reply-generation call.
type BotMessage struct {
	User    string `json:"user"`
	Message string `json:"message"`
}

// Validate enforces field constraints and additionally rejects messages that
// trim down to nothing. A one-character all-whitespace message passes the
// length check but must still never reach the reply generator.
func (b *BotMessage) Validate() error {
	if err := requireString("user", b.User, 3, 32); err != nil {
		return err
	}
	if err := requireString("message", b.Message, 1, 4000); err != nil {
		return err
	}
	if strings.TrimSpace(b.Message) == "" {
		return invalid("message", ReasonEmpty)
	}
	return nil
}
