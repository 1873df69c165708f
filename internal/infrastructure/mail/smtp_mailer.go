// Package mail sends quote emails over SMTP.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/infrastructure/resilience"
	"vacate_quote/internal/usecase/interfaces"
)

var ErrNoRecipient = errors.New("mail: recipient address is empty")

// Config holds the SMTP relay settings.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	FromName    string
	OfficePhone string
	DialTimeout time.Duration
}

// SMTPMailer sends one plain-text message per quote.
type SMTPMailer struct {
	cfg  Config
	dial func(ctx context.Context, addr string) (net.Conn, error)
}

var _ interfaces.IQuoteMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg Config) *SMTPMailer {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 10 * time.Second
	}
	d := &net.Dialer{Timeout: cfg.DialTimeout}
	return &SMTPMailer{cfg: cfg, dial: func(ctx context.Context, addr string) (net.Conn, error) {
		return d.DialContext(ctx, "tcp", addr)
	}}
}

// SendQuote delivers the quote link. 5xx replies from the relay are marked
// permanent so the caller does not retry them.
func (m *SMTPMailer) SendQuote(ctx context.Context, email entities.QuoteEmail) error {
	to := strings.TrimSpace(email.To)
	if to == "" {
		return resilience.Permanent(ErrNoRecipient)
	}

	msg := m.compose(email, to)
	if err := m.send(ctx, to, msg); err != nil {
		var tpErr *textproto.Error
		if errors.As(err, &tpErr) && tpErr.Code >= 500 {
			return resilience.Permanent(eris.Wrapf(err, "smtp: rejected %s", email.QuoteID))
		}
		return eris.Wrapf(err, "smtp: send %s", email.QuoteID)
	}

	zap.L().Info("quote email sent", zap.String("quote_id", email.QuoteID))
	return nil
}

func (m *SMTPMailer) send(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	conn, err := m.dial(ctx, addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return err
		}
	}
	if m.cfg.Username != "" {
		if err := c.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
			return err
		}
	}
	if err := c.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func (m *SMTPMailer) compose(email entities.QuoteEmail, to string) []byte {
	name := strings.TrimSpace(email.CustomerName)
	if name == "" {
		name = "there"
	}

	var b bytes.Buffer
	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", m.cfg.FromName), m.cfg.From)
	}
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", "Your vacate cleaning quote "+email.QuoteID))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", name)
	fmt.Fprintf(&b, "Thanks for chatting with us. Your quote %s is ready:\r\n%s\r\n\r\n", email.QuoteID, email.DocumentURL)
	if email.BookingURL != "" {
		fmt.Fprintf(&b, "When you're ready to lock it in, book here:\r\n%s\r\n\r\n", email.BookingURL)
	}
	b.WriteString("The quote is valid for 7 days.\r\n")
	if m.cfg.OfficePhone != "" {
		fmt.Fprintf(&b, "Questions? Call us on %s.\r\n", m.cfg.OfficePhone)
	}
	return b.Bytes()
}
