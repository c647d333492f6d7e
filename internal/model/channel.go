package model

// Channel represents a chat channel document in the channel collection.
type Channel struct {
	Name      string  `json:"name" bson:"name"`
	Topic     *string `json:"topic,omitempty" bson:"topic,omitempty"`
	IsPrivate *bool   `json:"is_private,omitempty" bson:"is_private"`
}

func (c *Channel) Validate() error {
	if err := requireString("name", c.Name, 2, 64); err != nil {
		return err
	}
	if err := optionalString("topic", c.Topic, 140); err != nil {
		return err
	}
	if c.IsPrivate == nil {
		private := false
		c.IsPrivate = &private
	}
	return nil
}
