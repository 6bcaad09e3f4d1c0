package config

import (
	"strings"
	"testing"
)

func TestMailConfig_Validate(t *testing.T) {
	base := func() *MailConfig {
		return &MailConfig{
			Provider:     MailProviderResend,
			ResendAPIKey: "re_key",
			From:         "no-reply@clubsite.fi",
			To:           "sales@clubsite.fi",
		}
	}

	t.Run("valid resend config", func(t *testing.T) {
		if err := base().validate(); err != nil {
			t.Fatalf("expected valid config, got %v", err)
		}
	})

	t.Run("missing api key is reported by name", func(t *testing.T) {
		cfg := base()
		cfg.ResendAPIKey = ""
		err := cfg.validate()
		if err == nil {
			t.Fatal("expected error for missing RESEND_API_KEY")
		}
		if got := err.Error(); !strings.Contains(got, "RESEND_API_KEY") {
			t.Fatalf("error should name the missing variable, got %q", got)
		}
	})

	t.Run("smtp provider requires host", func(t *testing.T) {
		cfg := base()
		cfg.Provider = MailProviderSMTP
		err := cfg.validate()
		if err == nil {
			t.Fatal("expected error for missing SMTP_HOST")
		}
		if got := err.Error(); !strings.Contains(got, "SMTP_HOST") {
			t.Fatalf("error should name the missing variable, got %q", got)
		}

		cfg.SMTPHost = "smtp.example.com"
		if err := cfg.validate(); err != nil {
			t.Fatalf("expected valid smtp config, got %v", err)
		}
	})

	t.Run("unknown provider rejected", func(t *testing.T) {
		cfg := base()
		cfg.Provider = "pigeon"
		if err := cfg.validate(); err == nil {
			t.Fatal("expected error for unknown provider")
		}
	})

	t.Run("missing addresses listed together", func(t *testing.T) {
		cfg := base()
		cfg.From = ""
		cfg.To = ""
		err := cfg.validate()
		if err == nil {
			t.Fatal("expected error for missing addresses")
		}
		if got := err.Error(); !strings.Contains(got, "MAIL_FROM") || !strings.Contains(got, "MAIL_TO") {
			t.Fatalf("error should list both missing variables, got %q", got)
		}
	})
}

func TestNewMailConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", " SMTP ")
	t.Setenv("SMTP_HOST", `"smtp.example.com"`)
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("MAIL_FROM", "no-reply@clubsite.fi")
	t.Setenv("MAIL_TO", "sales@clubsite.fi")

	cfg := NewMailConfig()

	if cfg.Provider != MailProviderSMTP {
		t.Fatalf("provider should be normalized, got %q", cfg.Provider)
	}
	if cfg.SMTPHost != "smtp.example.com" {
		t.Fatalf("quoted env values should be sanitized, got %q", cfg.SMTPHost)
	}
	if cfg.SMTPPort != "465" {
		t.Fatalf("unexpected port %q", cfg.SMTPPort)
	}
}
