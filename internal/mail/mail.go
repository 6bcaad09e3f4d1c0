package mail

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Message is a fully formed outbound email. Both sender implementations
// accept the same shape: from, to, reply-to, subject, HTML body, text body.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers one message. Send returns the provider message id when the
// provider reports one ("" for SMTP). A failed send is terminal; callers never
// retry.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)

	// Healthy reports whether the sender is able to reach its provider.
	Healthy(ctx context.Context) error
}

// Addresses holds the fixed envelope configuration shared by every
// submission: all mail goes out from From, operator notifications go to To.
type Addresses struct {
	From string
	To   string
}

var deliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mail_deliveries_total",
		Help: "Outbound email delivery attempts by provider and outcome.",
	},
	[]string{"provider", "outcome"},
)

func observeDelivery(provider string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	deliveriesTotal.WithLabelValues(provider, outcome).Inc()
}
