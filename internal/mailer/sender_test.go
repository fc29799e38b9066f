package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asionix/mailroom/internal/models"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		msg     models.Message
		wantErr error
	}{
		{
			name:    "no recipient",
			msg:     models.Message{Subject: "hi"},
			wantErr: ErrNoRecipient,
		},
		{
			name:    "no subject",
			msg:     models.Message{To: []string{"hr@example.com"}},
			wantErr: ErrNoSubject,
		},
		{
			name:    "complete",
			msg:     models.Message{To: []string{"hr@example.com"}, Subject: "hi"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, check(&tt.msg))
		})
	}
}

func TestResendSender_RejectsIncompleteMessage(t *testing.T) {
	s := NewResendSender("")

	_, err := s.Send(context.Background(), &models.Message{Subject: "hi"})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestSMTPSender_RejectsBadAddresses(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "localhost", Port: 2525})

	// never dials: the from address fails message construction first
	_, err := s.Send(context.Background(), &models.Message{
		From:    "not an address",
		To:      []string{"hr@example.com"},
		Subject: "hi",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from address")
}
