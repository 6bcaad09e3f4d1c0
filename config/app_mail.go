package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
)

const (
	MailProviderResend = "resend"
	MailProviderSMTP   = "smtp"
)

// MailConfig selects and configures the outbound email provider. The sender
// is constructed once here and handed to the domains as an explicit
// dependency; nothing in the application holds a package-level mail handle.
type MailConfig struct {
	Provider string

	ResendAPIKey  string
	ResendBaseURL string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string

	From string
	To   string
}

func NewMailConfig() *MailConfig {
	return &MailConfig{
		Provider: strings.ToLower(sanitizeEnv(GetValueFromEnvironmentVariable("MAIL_PROVIDER", MailProviderResend))),

		ResendAPIKey:  sanitizeEnv(GetValueFromEnvironmentVariable("RESEND_API_KEY", "")),
		ResendBaseURL: sanitizeEnv(GetValueFromEnvironmentVariable("RESEND_BASE_URL", "")),

		SMTPHost:     sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_HOST", "")),
		SMTPPort:     sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_PORT", "587")),
		SMTPUsername: sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_USERNAME", "")),
		SMTPPassword: sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_PASSWORD", "")),

		From: sanitizeEnv(GetValueFromEnvironmentVariable("MAIL_FROM", "")),
		To:   sanitizeEnv(GetValueFromEnvironmentVariable("MAIL_TO", "")),
	}
}

func (mc *MailConfig) Addresses() mail.Addresses {
	return mail.Addresses{From: mc.From, To: mc.To}
}

func (mc *MailConfig) validate() error {
	missing := []string{}

	if mc.From == "" {
		missing = append(missing, "MAIL_FROM")
	}
	if mc.To == "" {
		missing = append(missing, "MAIL_TO")
	}

	switch mc.Provider {
	case MailProviderResend:
		if mc.ResendAPIKey == "" {
			missing = append(missing, "RESEND_API_KEY")
		}
	case MailProviderSMTP:
		if mc.SMTPHost == "" {
			missing = append(missing, "SMTP_HOST")
		}
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q (expected %q or %q)", mc.Provider, MailProviderResend, MailProviderSMTP)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required mail env vars: %s", strings.Join(missing, ", "))
	}

	return nil
}

// NewSender builds the configured sender. For SMTP the relay is verified in
// the background so a slow or unreachable relay never blocks startup; the
// outcome is only logged.
func (mc *MailConfig) NewSender(logger *log.Logger) (mail.Sender, error) {
	if err := mc.validate(); err != nil {
		logger.Error("Mail configuration is incomplete", "error", err)
		return nil, err
	}

	switch mc.Provider {
	case MailProviderSMTP:
		sender := mail.NewSMTPSender(mc.SMTPHost, mc.SMTPPort, mc.SMTPUsername, mc.SMTPPassword, logger)

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			if err := sender.Healthy(ctx); err != nil {
				logger.Warn("SMTP relay self-check failed", "host", mc.SMTPHost, "error", err)
				return
			}
			logger.Info("SMTP relay self-check passed", "host", mc.SMTPHost)
		}()

		logger.Info("Mail sender initialized", "provider", MailProviderSMTP, "host", mc.SMTPHost)
		return sender, nil

	default:
		logger.Info("Mail sender initialized", "provider", MailProviderResend)
		return mail.NewResendClient(mc.ResendAPIKey, mc.ResendBaseURL, logger), nil
	}
}
