package mail

import (
	"context"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/infrastructure/resilience"
)

// fakeRelay is a minimal SMTP server: no TLS, no auth.
type fakeRelay struct {
	ln        net.Listener
	rcptReply string

	mu   sync.Mutex
	data string
	rcpt string
}

func startRelay(t *testing.T, rcptReply string) *fakeRelay {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	r := &fakeRelay{ln: ln, rcptReply: rcptReply}
	t.Cleanup(func() { ln.Close() })
	go r.serve()
	return r
}

func (r *fakeRelay) serve() {
	for {
		conn, err := r.ln.Accept()
		if err != nil {
			return
		}
		go r.handle(conn)
	}
}

func (r *fakeRelay) handle(conn net.Conn) {
	defer conn.Close()
	tp := textproto.NewConn(conn)
	_ = tp.PrintfLine("220 fake ESMTP")
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.SplitN(line, " ", 2)[0])
		switch cmd {
		case "EHLO", "HELO":
			_ = tp.PrintfLine("250 fake")
		case "MAIL":
			_ = tp.PrintfLine("250 ok")
		case "RCPT":
			r.mu.Lock()
			r.rcpt = line
			r.mu.Unlock()
			_ = tp.PrintfLine("%s", r.rcptReply)
		case "DATA":
			_ = tp.PrintfLine("354 go ahead")
			lines, err := tp.ReadDotLines()
			if err != nil {
				return
			}
			r.mu.Lock()
			r.data = strings.Join(lines, "\n")
			r.mu.Unlock()
			_ = tp.PrintfLine("250 queued")
		case "QUIT":
			_ = tp.PrintfLine("221 bye")
			return
		default:
			_ = tp.PrintfLine("502 not implemented")
		}
	}
}

func (r *fakeRelay) config() Config {
	host, port, _ := net.SplitHostPort(r.ln.Addr().String())
	p, _ := strconv.Atoi(port)
	return Config{Host: host, Port: p, From: "quotes@example.com", FromName: "Quotes", OfficePhone: "1300 918 388"}
}

func (r *fakeRelay) received() (rcpt, data string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rcpt, r.data
}

func TestSMTPMailerSendQuote(t *testing.T) {
	email := entities.QuoteEmail{
		QuoteID:      "VC-250101-120000-123",
		To:           "sam@example.com",
		CustomerName: "Sam",
		DocumentURL:  "https://quotes.example.com/quotes/VC-250101-120000-123.html",
		BookingURL:   "https://book.example.com/VC-250101-120000-123",
	}

	t.Run("delivers the message", func(t *testing.T) {
		relay := startRelay(t, "250 ok")
		m := NewSMTPMailer(relay.config())

		require.NoError(t, m.SendQuote(context.Background(), email))

		rcpt, data := relay.received()
		assert.Contains(t, rcpt, "<sam@example.com>")
		assert.Contains(t, data, "Hi Sam,")
		assert.Contains(t, data, email.DocumentURL)
		assert.Contains(t, data, email.BookingURL)
		assert.Contains(t, data, "1300 918 388")
	})

	t.Run("rejected recipient is permanent", func(t *testing.T) {
		relay := startRelay(t, "550 no such user")
		m := NewSMTPMailer(relay.config())

		err := m.SendQuote(context.Background(), email)
		require.Error(t, err)
		assert.True(t, resilience.IsPermanent(err))
	})

	t.Run("temporary failure is retryable", func(t *testing.T) {
		relay := startRelay(t, "451 try later")
		m := NewSMTPMailer(relay.config())

		err := m.SendQuote(context.Background(), email)
		require.Error(t, err)
		assert.False(t, resilience.IsPermanent(err))
	})

	t.Run("empty recipient", func(t *testing.T) {
		m := NewSMTPMailer(Config{Host: "127.0.0.1", Port: 1})

		err := m.SendQuote(context.Background(), entities.QuoteEmail{QuoteID: "VC-1"})
		assert.ErrorIs(t, err, ErrNoRecipient)
		assert.True(t, resilience.IsPermanent(err))
	})
}
