package contact

import (
	"time"

	"github.com/fairwaylabs/clubsite-api/config/router"
	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
	apperrors "github.com/fairwaylabs/clubsite-api/pkg/errors"
	"github.com/fairwaylabs/clubsite-api/pkg/ratelimit"
)

func NewContactController(
	sender mail.Sender,
	addrs mail.Addresses,
	logger *log.Logger,
) *router.RESTController {

	return router.NewRESTController(
		"ContactController",
		"/api/contact",
		func(rs *router.RouterService, c *router.RESTController) {
			service := NewContactService(logger, sender, addrs)

			rs.AddPostHandler(c, createContactSubmissionRateLimiter(), "", submitContactHandler(service))
		},
	)
}

func createContactSubmissionRateLimiter() ratelimit.RateLimiter {
	// A human filling in a form does not submit more than a few times a
	// minute; anything past this is scripted.
	const contactRequestsPerMinute = 10

	return ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
		Requests: contactRequestsPerMinute,
		Window:   time.Minute,
	})
}

func submitContactHandler(service ContactService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SubmitContactRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.SubmitContact(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Contact submission delivered")
	}
}
