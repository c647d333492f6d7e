package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		message string
		want    string
	}{
		{
			name:    "video keyword",
			user:    "Lee",
			message: "I want to post a video",
			want:    "Hey Lee! That sounds like a great video idea. Want me to draft a catchy caption?",
		},
		{
			name:    "clip keyword",
			user:    "Lee",
			message: "check this CLIP",
			want:    "Hey Lee! That sounds like a great video idea. Want me to draft a catchy caption?",
		},
		{
			name:    "channel keyword",
			user:    "Ana",
			message: "how do I make a channel?",
			want:    "Sure Ana, I can help you set up a new channel or find trending topics.",
		},
		{
			name:    "room keyword",
			user:    "Ana",
			message: "join my Room",
			want:    "Sure Ana, I can help you set up a new channel or find trending topics.",
		},
		{
			name:    "fallback echoes trimmed text",
			user:    "Sam",
			message: "What's up",
			want:    "Hi Sam, I hear you: 'What's up'. How can I help further?",
		},
		{
			name:    "fallback trims surrounding whitespace",
			user:    "Sam",
			message: "  hello there  ",
			want:    "Hi Sam, I hear you: 'hello there'. How can I help further?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reply(tt.user, tt.message))
		})
	}
}

// A message matching both keyword sets must resolve to the video template.
func TestReplyVideoPrecedesChannel(t *testing.T) {
	got := Reply("Lee", "  video chat please  ")
	assert.Equal(t, "Hey Lee! That sounds like a great video idea. Want me to draft a catchy caption?", got)
	assert.Contains(t, got, "Lee")
}
