package waitlist

import (
	"time"

	"github.com/fairwaylabs/clubsite-api/config/router"
	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
	apperrors "github.com/fairwaylabs/clubsite-api/pkg/errors"
	"github.com/fairwaylabs/clubsite-api/pkg/ratelimit"
)

func NewWaitlistController(
	sender mail.Sender,
	addrs mail.Addresses,
	logger *log.Logger,
) *router.RESTController {

	return router.NewRESTController(
		"WaitlistController",
		"/api/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			service := NewWaitlistService(logger, sender, addrs)

			rs.AddPostHandler(c, createWaitlistSignupRateLimiter(), "", joinWaitlistHandler(service))
		},
	)
}

func createWaitlistSignupRateLimiter() ratelimit.RateLimiter {
	// Each signup triggers two outbound emails, so keep the limit tight.
	const waitlistRequestsPerMinute = 5

	return ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
		Requests: waitlistRequestsPerMinute,
		Window:   time.Minute,
	})
}

func joinWaitlistHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req JoinWaitlistRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.JoinWaitlist(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Waitlist signup processed")
	}
}
