package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
	apperrors "github.com/fairwaylabs/clubsite-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContactService_SubmitContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSender := mail.NewMockSender(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	addrs := mail.Addresses{From: "no-reply@clubsite.fi", To: "sales@clubsite.fi"}
	service := NewContactService(logger, mockSender, addrs)

	t.Run("successful submission sends exactly one email", func(t *testing.T) {
		req := &SubmitContactRequest{
			FirstName: "Matti",
			LastName:  "Virtanen",
			Email:     "matti@example.com",
			Message:   "Hei",
			Source:    "Demo",
		}

		mockSender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *mail.Message) (string, error) {
				assert.Equal(t, "sales@clubsite.fi", msg.To)
				assert.Equal(t, "matti@example.com", msg.ReplyTo)
				assert.Contains(t, msg.Subject, "Matti Virtanen")
				assert.Contains(t, msg.Subject, "Demo")
				return "msg_123", nil
			}).
			Times(1)

		resp, err := service.SubmitContact(context.Background(), req)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "msg_123", resp.MessageID)
	})

	t.Run("missing required field performs zero sends", func(t *testing.T) {
		cases := map[string]*SubmitContactRequest{
			"empty name":           {Email: "matti@example.com", Message: "Hei"},
			"whitespace-only name": {FirstName: "   ", Email: "matti@example.com", Message: "Hei"},
			"empty email":          {FirstName: "Matti", LastName: "Virtanen", Message: "Hei"},
			"empty message":        {FirstName: "Matti", LastName: "Virtanen", Email: "matti@example.com"},
			"whitespace-only body": {FirstName: "Matti", LastName: "Virtanen", Email: "matti@example.com", Message: " \n "},
		}

		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				// No Send expectation registered: any call fails the test.
				resp, err := service.SubmitContact(context.Background(), req)

				assert.Error(t, err)
				assert.Nil(t, resp)
				assert.Equal(t, apperrors.StatusBadRequest, apperrors.HTTPStatusCode(err))
			})
		}
	})

	t.Run("nil request rejected", func(t *testing.T) {
		resp, err := service.SubmitContact(context.Background(), nil)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("provider failure maps to server error without retry", func(t *testing.T) {
		req := &SubmitContactRequest{
			FirstName: "Matti",
			LastName:  "Virtanen",
			Email:     "matti@example.com",
			Message:   "Hei",
		}

		mockSender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return("", errors.New("resend rejected message (status 500)")).
			Times(1)

		resp, err := service.SubmitContact(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, apperrors.StatusInternalServerError, apperrors.HTTPStatusCode(err))
		// Provider detail stays out of the user-facing message.
		assert.Equal(t, "unable to deliver message", apperrors.GetHumanReadableMessage(err))
	})
}
