package model

// Message represents a chat message document in the message collection.
// ChannelID is an opaque reference; it is never checked against the channel
// collection.
type Message struct {
	ChannelID string `json:"channel_id" bson:"channel_id"`
	Author    string `json:"author" bson:"author"`
	Content   string `json:"content" bson:"content"`
}

func (m *Message) Validate() error {
	if m.ChannelID == "" {
		return invalid("channel_id", ReasonRequired)
	}
	if err := requireString("author", m.Author, 3, 32); err != nil {
		return err
	}
	if err := requireString("content", m.Content, 1, 4000); err != nil {
		return err
	}
	return nil
}
