package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roam/internal/utils"
)

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func TestGenerateCode_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateCode()
		assert.GreaterOrEqual(t, code, 100000)
		assert.LessOrEqual(t, code, 999999)
	}
}

func TestSendOTP_IssuesTokenBoundToEmail(t *testing.T) {
	sender := &fakeSender{}
	svc := NewOTPService(sender, "test-secret")

	token, err := svc.SendOTP("guide@example.com")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "guide@example.com", sender.sent[0])

	claims, err := utils.ParseEmailToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "guide@example.com", claims.Email)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestSendOTP_NoTokenOnSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	svc := NewOTPService(sender, "test-secret")

	token, err := svc.SendOTP("guide@example.com")
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Empty(t, sender.sent)
}
