// Package mailer sends plain-text email through a shoutrrr SMTP URL.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/url"
	"strings"
	"time"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"
)

// ErrNotConfigured is returned by New when no URL is given.
var ErrNotConfigured = errors.New("mailer: no shoutrrr url configured")

const defaultTimeout = 15 * time.Second

// SMTP delivers mail with shoutrrr. The configured URL carries host,
// credentials and sender; the recipient and subject are set per message.
type SMTP struct {
	base    *url.URL
	timeout time.Duration
	log     *slog.Logger
}

// New validates rawURL and returns an SMTP mailer. Only smtp:// URLs are
// accepted.
func New(log *slog.Logger, rawURL string, timeout time.Duration) (*SMTP, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrNotConfigured
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("mailer: parse url: %w", err)
	}
	if u.Scheme != "smtp" {
		return nil, fmt.Errorf("mailer: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("mailer: url has no host")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SMTP{base: u, timeout: timeout, log: log.With("adapter", "mailer")}, nil
}

// Send mails body to a single recipient.
func (m *SMTP) Send(ctx context.Context, to, subject, body string) error {
	target, err := m.recipientURL(to, subject)
	if err != nil {
		return err
	}

	sender, err := shoutrrr.CreateSender(target)
	if err != nil {
		return fmt.Errorf("mailer: create sender for %s: %w", m.base.Host, err)
	}
	sender.Timeout = m.timeout
	sender.SetLogger(log.New(io.Discard, "", 0))

	params := stypes.Params{}
	params.SetTitle(subject)

	done := make(chan []error, 1)
	go func() { done <- sender.Send(body, &params) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case errs := <-done:
		for _, e := range errs {
			if e != nil {
				return fmt.Errorf("mailer: send via %s: %w", m.base.Host, e)
			}
		}
	}

	m.log.InfoContext(ctx, "mail sent", slog.String("to", to), slog.String("subject", subject))
	return nil
}

// recipientURL returns the base URL with the recipient and subject set.
// The base URL's own recipients are replaced.
func (m *SMTP) recipientURL(to, subject string) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" || strings.ContainsAny(to, ",\r\n") {
		return "", fmt.Errorf("mailer: invalid recipient %q", to)
	}

	u := *m.base
	q := u.Query()
	q.Set("toaddresses", to)
	q.Set("subject", subject)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Log is a mailer that only logs. It stands in when no SMTP URL is set so
// invitations still work in development.
type Log struct {
	log *slog.Logger
}

// NewLog creates a logging mailer.
func NewLog(log *slog.Logger) *Log {
	return &Log{log: log.With("adapter", "mailer")}
}

// Send logs the message instead of delivering it.
func (l *Log) Send(ctx context.Context, to, subject, body string) error {
	l.log.WarnContext(ctx, "mail not delivered: no smtp configured",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_bytes", len(body)),
	)
	return nil
}
