package domain

import (
	"github.com/fairwaylabs/clubsite-api/config"
	"github.com/fairwaylabs/clubsite-api/domain/contact"
	"github.com/fairwaylabs/clubsite-api/domain/monitoring"
	"github.com/fairwaylabs/clubsite-api/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.Mailer, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(contact.NewContactController(appConfig.Mailer, appConfig.MailAddresses, appConfig.Logger))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(appConfig.Mailer, appConfig.MailAddresses, appConfig.Logger))
}
