package integration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fairwaylabs/clubsite-api/config"
	"github.com/stretchr/testify/suite"
)

type ContactAPITestSuite struct {
	suite.Suite
	sender    *stubSender
	server    *httptest.Server
	baseURL   string
	appConfig *config.ApplicationConfig
	clientIP  string
	testNo    int
}

func (s *ContactAPITestSuite) SetupSuite() {
	// Trust X-Forwarded-For so each test can present its own client IP and
	// start with a fresh rate-limit bucket.
	s.T().Setenv("TRUSTED_PROXIES", "*")

	s.sender = newStubSender()
	s.server, s.appConfig = newTestServer(s.sender)
	s.baseURL = s.server.URL
}

func (s *ContactAPITestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ContactAPITestSuite) SetupTest() {
	s.sender.reset()
	s.testNo++
	s.clientIP = fmt.Sprintf("198.51.100.%d", s.testNo)
}

func (s *ContactAPITestSuite) postJSON(path string, payload map[string]any) (*http.Response, map[string]any) {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPost, s.baseURL+path, bytes.NewBuffer(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", s.clientIP)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return resp, response
}

// Tests

func (s *ContactAPITestSuite) TestSubmitContact() {
	resp, response := s.postJSON("/api/contact", map[string]any{
		"firstName": "Matti",
		"lastName":  "Virtanen",
		"email":     "matti@example.com",
		"phone":     "+358 40 123 4567",
		"message":   "Haluaisimme demon.",
		"source":    "Demo",
	})

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(float64(200), response["code"])

	data := response["data"].(map[string]any)
	s.Equal(true, data["success"])
	s.NotEmpty(data["id"])

	sent := s.sender.sentMessages()
	s.Require().Len(sent, 1)
	s.Equal(testAddresses.To, sent[0].To)
	s.Equal(testAddresses.From, sent[0].From)
	s.Equal("matti@example.com", sent[0].ReplyTo)
	s.Contains(sent[0].Subject, "Matti Virtanen")
	s.Contains(sent[0].Subject, "Demo")
	s.Contains(sent[0].HTML, "Haluaisimme demon.")
	s.Contains(sent[0].Text, "+358 40 123 4567")
}

func (s *ContactAPITestSuite) TestSubmitContactCombinedNameField() {
	resp, _ := s.postJSON("/api/contact", map[string]any{
		"name":    "Maija Meikäläinen",
		"email":   "maija@example.com",
		"message": "Hello",
	})

	s.Equal(http.StatusOK, resp.StatusCode)

	sent := s.sender.sentMessages()
	s.Require().Len(sent, 1)
	s.Contains(sent[0].Subject, "Maija Meikäläinen")
}

func (s *ContactAPITestSuite) TestSubmitContactAcceptsUnvalidatedAddress() {
	// The address is required but not format-checked server-side; anything
	// non-empty goes through to the provider.
	resp, _ := s.postJSON("/api/contact", map[string]any{
		"firstName": "Matti",
		"email":     "matti",
		"message":   "Hei",
	})

	s.Equal(http.StatusOK, resp.StatusCode)

	sent := s.sender.sentMessages()
	s.Require().Len(sent, 1)
	s.Equal("matti", sent[0].ReplyTo)
}

func (s *ContactAPITestSuite) TestSubmitContactMissingEmail() {
	resp, _ := s.postJSON("/api/contact", map[string]any{
		"firstName": "Matti",
		"message":   "Hei",
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Empty(s.sender.sentMessages())
}

func (s *ContactAPITestSuite) TestSubmitContactMissingMessage() {
	resp, _ := s.postJSON("/api/contact", map[string]any{
		"firstName": "Matti",
		"email":     "matti@example.com",
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Empty(s.sender.sentMessages())
}

func (s *ContactAPITestSuite) TestSubmitContactProviderFailure() {
	s.sender.failOnCall(1, errors.New("resend rejected message (status 500)"))

	resp, response := s.postJSON("/api/contact", map[string]any{
		"firstName": "Matti",
		"email":     "matti@example.com",
		"message":   "Hei",
	})

	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	// Provider detail must not leak to the caller.
	s.Equal("unable to deliver message", response["message"])
	s.Empty(s.sender.sentMessages())
}

func (s *ContactAPITestSuite) TestWrongVerbRejected() {
	resp, err := http.Get(s.baseURL + "/api/contact")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
	s.Empty(s.sender.sentMessages())
}

func (s *ContactAPITestSuite) TestHealthCheck() {
	resp, err := http.Get(s.baseURL + "/api/health")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))

	data := response["data"].(map[string]any)
	s.Equal(float64(1), data["mailer"])
	s.Equal(float64(0), data["cache"])
	s.GreaterOrEqual(data["uptime"], float64(0))
}

func TestContactAPITestSuite(t *testing.T) {
	suite.Run(t, new(ContactAPITestSuite))
}
