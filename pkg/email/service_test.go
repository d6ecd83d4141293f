package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewService_ConsoleModeWithoutKey(t *testing.T) {
	s := NewService("noreply@prompthub.dev", "PromptHub", "")
	assert.False(t, s.useSendGrid)
}

func TestNewService_SendGridWithKey(t *testing.T) {
	s := NewService("noreply@prompthub.dev", "PromptHub", "SG.fake-key")
	assert.True(t, s.useSendGrid)
}

func TestSendEmail_ConsoleModeNeverFails(t *testing.T) {
	s := NewService("noreply@prompthub.dev", "PromptHub", "")

	err := s.SendEmail("user@example.com", "User", "Subject", "<p>html</p>", "plain")
	assert.NoError(t, err)
}
