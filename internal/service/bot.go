package service

import (
	"fmt"
	"strings"
)

var (
	videoKeywords   = []string{"video", "clip", "reel"}
	channelKeywords = []string{"channel", "chat", "room"}
)

// Reply maps a free-text message to a canned response. Video keywords win
// over channel keywords when a message contains both; everything else falls
// through to a verbatim echo. Deterministic, no state, safe for concurrent
// use.
//
// The caller rejects messages that trim down to empty before getting here.
func Reply(user, message string) string {
	text := strings.TrimSpace(message)
	lower := strings.ToLower(text)

	if containsAny(lower, videoKeywords) {
		return fmt.Sprintf("Hey %s! That sounds like a great video idea. Want me to draft a catchy caption?", user)
	}
	if containsAny(lower, channelKeywords) {
		return fmt.Sprintf("Sure %s, I can help you set up a new channel or find trending topics.", user)
	}
	return fmt.Sprintf("Hi %s, I hear you: '%s'. How can I help further?", user, text)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
