package email

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"strconv"
	"testing"
	"time"

	"go-form-relay/config"
	"go-form-relay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type captureDialer struct {
	calls    int
	messages []*gomail.Message
	err      error
	block    chan struct{}
}

func (d *captureDialer) DialAndSend(m ...*gomail.Message) error {
	d.calls++
	d.messages = append(d.messages, m...)
	if d.block != nil {
		<-d.block
	}
	return d.err
}

func newTestService(d dialer) *EmailService {
	return &EmailService{
		dialer:    d,
		host:      "smtp.example.com",
		username:  "relay@example.com",
		password:  "secret",
		fromEmail: "relay@example.com",
	}
}

func rendered(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendRejectsEmptyRecipientBeforeDialing(t *testing.T) {
	d := &captureDialer{}
	s := newTestService(d)

	err := s.Send(context.Background(), &domain.EmailMessage{Subject: "hi", TextBody: "body"})

	var de *domain.DeliveryError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.NoRecipient, de.Kind)
	assert.Equal(t, 0, d.calls)

	err = s.Send(context.Background(), nil)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.NoRecipient, de.Kind)
}

func TestSendPlainText(t *testing.T) {
	d := &captureDialer{}
	s := newTestService(d)

	err := s.Send(context.Background(), &domain.EmailMessage{
		To:       "a@x.com",
		Subject:  "Form Submission Data",
		TextBody: "First Name: Ada\n",
	})
	require.NoError(t, err)
	require.Len(t, d.messages, 1)

	m := d.messages[0]
	assert.Equal(t, []string{"a@x.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"relay@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"Form Submission Data"}, m.GetHeader("Subject"))
	assert.Empty(t, m.GetHeader("Reply-To"))

	raw := rendered(t, m)
	assert.Contains(t, raw, "Content-Type: text/plain")
	assert.NotContains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "First Name: Ada")
}

func TestSendTextAndHTMLIsMultipartAlternative(t *testing.T) {
	d := &captureDialer{}
	s := newTestService(d)
	s.fromName = "Relay"

	err := s.Send(context.Background(), &domain.EmailMessage{
		To:       "ops@x.com",
		Subject:  "New Contact Form Submission",
		TextBody: "Name: Ada",
		HTMLBody: "<p>Name: Ada</p>",
		ReplyTo:  "ada@x.com",
	})
	require.NoError(t, err)

	m := d.messages[0]
	assert.Equal(t, []string{"ada@x.com"}, m.GetHeader("Reply-To"))
	assert.Equal(t, []string{`"Relay" <relay@example.com>`}, m.GetHeader("From"))

	raw := rendered(t, m)
	assert.Contains(t, raw, "multipart/alternative")
	assert.Less(t, bytes.Index([]byte(raw), []byte("text/plain")), bytes.Index([]byte(raw), []byte("text/html")))
}

func TestSendWrapsTransportFailure(t *testing.T) {
	cause := errors.New("535 authentication failed")
	d := &captureDialer{err: cause}
	s := newTestService(d)

	err := s.Send(context.Background(), &domain.EmailMessage{To: "a@x.com", Subject: "s", TextBody: "b"})

	var de *domain.DeliveryError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.TransportFailure, de.Kind)
	assert.Equal(t, "a@x.com", de.Recipient)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, d.calls, "a failed send is not retried")
}

func TestSendTimeout(t *testing.T) {
	d := &captureDialer{block: make(chan struct{})}
	defer close(d.block)
	s := newTestService(d)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := s.Send(ctx, &domain.EmailMessage{To: "a@x.com", Subject: "s", TextBody: "b"})

	var de *domain.DeliveryError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.DeliveryTimeout, de.Kind)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestIsConfigured(t *testing.T) {
	s := NewEmailService(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, SMTPUsername: "u", SMTPPassword: "p", SMTPFromEmail: "u@example.com"})
	assert.True(t, s.IsConfigured())

	s = NewEmailService(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587})
	assert.False(t, s.IsConfigured())
}

func TestRenderFieldsHTMLEscapesValues(t *testing.T) {
	html, err := RenderFieldsHTML("Form Submission Data", []Field{
		{Label: "First Name", Value: "<script>alert(1)</script>"},
		{Label: "Department", Value: "R&D"},
	})
	require.NoError(t, err)
	assert.Contains(t, html, "First Name:")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "R&amp;D")
}

func TestFormatFields(t *testing.T) {
	got := FormatFields([]Field{{"Name", "Ada"}, {"Email", "ada@x.com"}})
	assert.Equal(t, "Name: Ada\nEmail: ada@x.com\n", got)
}

// requireSMTP skips unless a local SMTP sink (e.g. MailHog on :1025) is reachable and enabled.
func requireSMTP(t *testing.T) (string, int) {
	t.Helper()
	if os.Getenv("RUN_SMTP_INTEGRATION") != "1" {
		t.Skip("skipping SMTP integration test; set RUN_SMTP_INTEGRATION=1 to enable")
	}
	host := os.Getenv("SMTP_TEST_HOST")
	if host == "" {
		host = "localhost"
	}
	port := 1025
	if p, err := strconv.Atoi(os.Getenv("SMTP_TEST_PORT")); err == nil {
		port = p
	}
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), 500*time.Millisecond)
	if err != nil {
		t.Fatalf("expected SMTP sink on %s:%d: %v", host, port, err)
	}
	conn.Close()
	return host, port
}

func TestSMTPIntegration(t *testing.T) {
	host, port := requireSMTP(t)
	s := NewEmailService(&config.Config{SMTPHost: host, SMTPPort: port, SMTPFromEmail: "relay@example.com"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.Send(ctx, &domain.EmailMessage{To: "a@x.com", Subject: "integration", TextBody: "hello"})
	assert.NoError(t, err)
}
