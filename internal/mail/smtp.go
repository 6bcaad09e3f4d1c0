package mail

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"github.com/fairwaylabs/clubsite-api/internal/log"
)

// SMTPSender submits messages to an authenticated mail relay. Connection
// parameters are fixed at construction; each send opens its own session the
// way smtp.SendMail does (STARTTLS when the relay offers it).
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	logger   *log.Logger
}

func NewSMTPSender(host, port, username, password string, logger *log.Logger) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		logger:   logger,
	}
}

func (s *SMTPSender) addr() string {
	return net.JoinHostPort(s.host, s.port)
}

func (s *SMTPSender) auth() smtp.Auth {
	if s.username == "" {
		return nil
	}
	return smtp.PlainAuth("", s.username, s.password, s.host)
}

func (s *SMTPSender) Send(ctx context.Context, msg *Message) (id string, err error) {
	defer func() { observeDelivery("smtp", err) }()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := EncodeMessage(msg)
	if err != nil {
		return "", fmt.Errorf("encode message: %w", err)
	}

	if err := smtp.SendMail(s.addr(), s.auth(), msg.From, []string{msg.To}, raw); err != nil {
		s.logger.Error("SMTP relay rejected message", "relay", s.addr(), "error", err)
		return "", fmt.Errorf("smtp send failed: %w", err)
	}

	s.logger.Info("Message accepted by SMTP relay", "relay", s.addr(), "to", msg.To)

	// SMTP submission has no provider message id.
	return "", nil
}

// Healthy opens a session to the relay and completes the greeting. Used for
// the startup self-check and the health probe; it never submits mail.
func (s *SMTPSender) Healthy(ctx context.Context) error {
	dialer := net.Dialer{Timeout: 10 * time.Second}

	conn, err := dialer.DialContext(ctx, "tcp", s.addr())
	if err != nil {
		return fmt.Errorf("dial smtp relay %s: %w", s.addr(), err)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp greeting failed: %w", err)
	}
	defer client.Close()

	if err := client.Noop(); err != nil {
		return fmt.Errorf("smtp relay not responding: %w", err)
	}

	return client.Quit()
}

// EncodeMessage renders a Message as a multipart/alternative MIME document
// with the plain-text part first, per RFC 2046 ordering (least faithful
// rendering first).
func EncodeMessage(msg *Message) ([]byte, error) {
	var buf bytes.Buffer
	alt := multipart.NewWriter(&buf)

	headers := []struct{ key, value string }{
		{"From", msg.From},
		{"To", msg.To},
		{"Reply-To", msg.ReplyTo},
		{"Subject", mime.QEncoding.Encode("utf-8", msg.Subject)},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", alt.Boundary())},
	}

	for _, h := range headers {
		if h.value == "" {
			continue
		}
		fmt.Fprintf(&buf, "%s: %s\r\n", h.key, h.value)
	}
	buf.WriteString("\r\n")

	if err := writePart(alt, "text/plain; charset=utf-8", msg.Text); err != nil {
		return nil, err
	}
	if err := writePart(alt, "text/html; charset=utf-8", msg.HTML); err != nil {
		return nil, err
	}

	if err := alt.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writePart(w *multipart.Writer, contentType, body string) error {
	if strings.TrimSpace(body) == "" {
		return nil
	}

	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"8bit"},
	})
	if err != nil {
		return err
	}

	_, err = part.Write([]byte(body))
	return err
}
