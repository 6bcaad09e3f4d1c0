package monitoring

import (
	"context"
	"time"

	"github.com/fairwaylabs/clubsite-api/config/router"
	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
	"github.com/fairwaylabs/clubsite-api/pkg/ratelimit"
)

type Cache interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Mailer int `json:"mailer"` // 1 = healthy, 0 = unhealthy
	Cache  int `json:"cache"`  // 1 = healthy, 0 = unhealthy/not configured
	Uptime int `json:"uptime"` // uptime in seconds
}

type MonitoringController struct {
	mailer    mail.Sender
	logger    *log.Logger
	cache     Cache
	startTime time.Time
}

func NewMonitoringController(mailer mail.Sender, logger *log.Logger, cache Cache) *router.RESTController {
	ctrl := &MonitoringController{
		mailer:    mailer,
		logger:    logger,
		cache:     cache,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {

			monitoringRateLimiter := createMonitoringRateLimiter()

			routerService.AddGetHandler(controller, monitoringRateLimiter, "", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.monitor(c)
			})

			routerService.AddGetHandler(controller, monitoringRateLimiter, "api/health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})
		},
	)
}

func createMonitoringRateLimiter() ratelimit.RateLimiter {

	const monitoringRequestsPerMinute = 30

	config := &ratelimit.RateLimitConfig{
		Requests: monitoringRequestsPerMinute,
		Window:   time.Minute,
	}

	return ratelimit.NewRateLimiter(config)
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Health check endpoint called")
	healthStatus := ctrl.performHealthChecks(c.Request.Context(), logger)

	return &router.ServiceResult{
		StatusCode: 200,
		Data:       healthStatus,
		Message:    "clubsite-api health check completed",
	}
}

func (ctrl *MonitoringController) monitor(
	c *router.RequestContext,
) *router.ServiceResult {
	return &router.ServiceResult{
		StatusCode: 200,
		Data:       "Monitoring endpoint is operational.",
		Message:    "Monitoring successful",
	}
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	checkMailerReadiness(ctx, ctrl, &status, logger)

	checkCacheConnectivity(ctx, ctrl, &status, logger)

	return status
}

func checkMailerReadiness(ctx context.Context, ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if ctrl.mailer == nil {
		status.Mailer = 0
		logger.Error("Mailer not configured, mailer health check failed")
		return
	}

	if err := ctrl.mailer.Healthy(ctx); err != nil {
		status.Mailer = 0
		logger.Error("Mailer health check failed", "error", err)
		return
	}

	status.Mailer = 1
	logger.Info("Mailer health check passed")
}

func checkCacheConnectivity(ctx context.Context, ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if ctrl.cache != nil {
		if ctrl.cache.Ping(ctx) == nil {
			status.Cache = 1
			logger.Info("Cache health check passed")
		} else {
			status.Cache = 0
			logger.Error("Cache health check failed")
		}
	} else {
		status.Cache = 0 // Cache not configured
		logger.Info("Cache not configured, cache health check skipped")
	}
}
