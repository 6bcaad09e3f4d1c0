package integration

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/fairwaylabs/clubsite-api/config"
	"github.com/fairwaylabs/clubsite-api/config/router"
	"github.com/fairwaylabs/clubsite-api/domain"
	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
)

// stubSender records every outbound message instead of delivering it. Failures
// can be injected per call index (1-based) to simulate provider outages.
type stubSender struct {
	mu        sync.Mutex
	sent      []*mail.Message
	failures  map[int]error
	healthErr error
	calls     int
}

func newStubSender() *stubSender {
	return &stubSender{failures: make(map[int]error)}
}

func (s *stubSender) Send(_ context.Context, msg *mail.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if err := s.failures[s.calls]; err != nil {
		return "", err
	}

	s.sent = append(s.sent, msg)
	return fmt.Sprintf("msg_%d", s.calls), nil
}

func (s *stubSender) Healthy(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.healthErr
}

func (s *stubSender) failOnCall(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[n] = err
}

func (s *stubSender) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
	s.failures = make(map[int]error)
	s.healthErr = nil
	s.calls = 0
}

func (s *stubSender) sentMessages() []*mail.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*mail.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

var testAddresses = mail.Addresses{
	From: "no-reply@clubsite.fi",
	To:   "sales@clubsite.fi",
}

// newTestServer wires the full application with the stub sender in place of a
// real mail provider and serves it over httptest.
func newTestServer(sender mail.Sender) (*httptest.Server, *config.ApplicationConfig) {
	logger := log.NewLoggerWithJSONOutput()

	appConfig := &config.ApplicationConfig{
		Mailer:        sender,
		MailAddresses: testAddresses,
		Logger:        logger,
	}

	appConfig.RouterService = router.CreateRouterService(logger, nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    30 * time.Second,
	})

	domain.SetupCoreDomain(appConfig)

	return httptest.NewServer(appConfig.RouterService.GetEngine()), appConfig
}
