package waitlist

import (
	"context"
	"strings"

	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
	apperrors "github.com/fairwaylabs/clubsite-api/pkg/errors"
)

type WaitlistService interface {
	// JoinWaitlist dispatches two emails for one signup: the operator
	// notification first, then the welcome message to the signup address.
	JoinWaitlist(ctx context.Context, req *JoinWaitlistRequest) (*JoinWaitlistResponse, error)
}

type waitlistService struct {
	logger *log.Logger
	sender mail.Sender
	addrs  mail.Addresses
}

func NewWaitlistService(logger *log.Logger, sender mail.Sender, addrs mail.Addresses) WaitlistService {
	return &waitlistService{logger: logger, sender: sender, addrs: addrs}
}

func (s *waitlistService) JoinWaitlist(ctx context.Context, req *JoinWaitlistRequest) (*JoinWaitlistResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil || strings.TrimSpace(req.Email) == "" {
		logger.Error("JoinWaitlist received empty email")
		return nil, apperrors.NewInvalidRequestError("email is required", nil)
	}

	email := strings.TrimSpace(req.Email)

	// Email dispatch is not transactional: if the welcome send fails after
	// the notification went out, the operator was still notified. That
	// partial state is accepted; the request as a whole reports failure and
	// the user may simply sign up again.
	if _, err := s.sender.Send(ctx, BuildOperatorNotification(email, s.addrs)); err != nil {
		logger.Error("Failed to deliver waitlist notification", "error", err)
		return nil, apperrors.NewMailProviderError("unable to process signup", err)
	}

	if _, err := s.sender.Send(ctx, BuildWelcomeMessage(email, s.addrs)); err != nil {
		logger.Error("Failed to deliver waitlist welcome message", "error", err, "operator_notified", true)
		return nil, apperrors.NewMailProviderError("unable to process signup", err)
	}

	logger.Info("Waitlist signup processed", "email", email)

	return &JoinWaitlistResponse{
		Success: true,
		Message: "Kiitos! Olet nyt jonotuslistalla. | Thank you! You are now on the waitlist.",
	}, nil
}
