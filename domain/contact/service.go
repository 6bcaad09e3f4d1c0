package contact

import (
	"context"
	"strings"

	"github.com/fairwaylabs/clubsite-api/internal/i18n"
	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
	apperrors "github.com/fairwaylabs/clubsite-api/pkg/errors"
)

type ContactService interface {
	// SubmitContact validates the submission, formats the operator email and
	// dispatches it through the configured sender. Exactly one send per
	// accepted submission; a failed send is never retried.
	SubmitContact(ctx context.Context, req *SubmitContactRequest) (*SubmitContactResponse, error)
}

type contactService struct {
	logger *log.Logger
	sender mail.Sender
	addrs  mail.Addresses
}

func NewContactService(logger *log.Logger, sender mail.Sender, addrs mail.Addresses) ContactService {
	return &contactService{logger: logger, sender: sender, addrs: addrs}
}

func (s *contactService) SubmitContact(ctx context.Context, req *SubmitContactRequest) (*SubmitContactResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("SubmitContact received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	// All-or-nothing: nothing is dispatched unless every required field is a
	// non-empty string. The binding layer catches most of this; trimming here
	// also rejects whitespace-only values.
	if err := validateSubmission(req); err != nil {
		logger.Error("Contact submission rejected", "error", err)
		return nil, err
	}

	msg := BuildContactMessage(req, s.addrs)

	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		logger.Error("Failed to deliver contact email", "error", err, "reply_to", req.Email)
		return nil, apperrors.NewMailProviderError("unable to deliver message", err)
	}

	logger.Info("Contact submission delivered", "message_id", id, "source", sourceLabel(req.Source, i18n.Match(req.Language)))
	return &SubmitContactResponse{Success: true, MessageID: id}, nil
}

func validateSubmission(req *SubmitContactRequest) error {
	if req.FullName() == "" {
		return apperrors.NewInvalidRequestError("name is required", nil)
	}
	if strings.TrimSpace(req.Email) == "" {
		return apperrors.NewInvalidRequestError("email is required", nil)
	}
	if strings.TrimSpace(req.Message) == "" {
		return apperrors.NewInvalidRequestError("message is required", nil)
	}
	return nil
}
