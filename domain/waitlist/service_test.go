package waitlist

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

func TestWaitlistService_JoinWaitlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSender := mail.NewMockSender(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	addrs := mail.Addresses{From: "no-reply@clubsite.fi", To: "sales@clubsite.fi"}
	service := NewWaitlistService(logger, mockSender, addrs)

	t.Run("signup sends notification then welcome, in order", func(t *testing.T) {
		notification := mockSender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *mail.Message) (string, error) {
				assert.Equal(t, "sales@clubsite.fi", msg.To)
				assert.Equal(t, "matti@example.com", msg.ReplyTo)
				assert.Contains(t, msg.Subject, "matti@example.com")
				return "msg_1", nil
			})

		mockSender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			After(notification).
			DoAndReturn(func(_ context.Context, msg *mail.Message) (string, error) {
				assert.Equal(t, "matti@example.com", msg.To)
				assert.Contains(t, msg.Subject, "Tervetuloa jonotuslistalle")
				return "msg_2", nil
			})

		resp, err := service.JoinWaitlist(context.Background(), &JoinWaitlistRequest{Email: "matti@example.com"})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("empty email performs zero sends", func(t *testing.T) {
		for name, req := range map[string]*JoinWaitlistRequest{
			"nil request":      nil,
			"empty email":      {},
			"whitespace email": {Email: "  \t "},
		} {
			t.Run(name, func(t *testing.T) {
				// No Send expectation registered: any call fails the test.
				resp, err := service.JoinWaitlist(context.Background(), req)

				assert.Error(t, err)
				assert.Nil(t, resp)
				assert.Equal(t, apperrors.StatusBadRequest, apperrors.HTTPStatusCode(err))
			})
		}
	})

	t.Run("notification failure skips the welcome send", func(t *testing.T) {
		mockSender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return("", errors.New("smtp: 554 rejected")).
			Times(1)

		resp, err := service.JoinWaitlist(context.Background(), &JoinWaitlistRequest{Email: "matti@example.com"})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, apperrors.StatusInternalServerError, apperrors.HTTPStatusCode(err))
		assert.Equal(t, "unable to process signup", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("welcome failure after a delivered notification still reports failure", func(t *testing.T) {
		notification := mockSender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return("msg_1", nil)

		mockSender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			After(notification).
			Return("", errors.New("resend rejected message (status 500)"))

		resp, err := service.JoinWaitlist(context.Background(), &JoinWaitlistRequest{Email: "matti@example.com"})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, apperrors.StatusInternalServerError, apperrors.HTTPStatusCode(err))
		assert.Equal(t, "unable to process signup", apperrors.GetHumanReadableMessage(err))
	})
}
