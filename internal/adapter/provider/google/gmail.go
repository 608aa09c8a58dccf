package google

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"mime"

	"google.golang.org/api/gmail/v1"
)

// Mail is a plain-text message sent from the connected account.
type Mail struct {
	From    string
	To      string
	Subject string
	Body    string
}

// SentMail identifies the delivered message.
type SentMail struct {
	MessageID string
	ThreadID  string
	Refreshed *Token
}

// SendMail sends m through the user's Gmail account.
func (c *Client) SendMail(ctx context.Context, creds Credentials, m Mail) (*SentMail, error) {
	s, err := c.session(ctx, creds)
	if err != nil {
		return nil, err
	}
	svc, err := gmail.NewService(ctx, s.options()...)
	if err != nil {
		return nil, mapError("gmail client", err)
	}

	raw := base64.RawURLEncoding.EncodeToString(BuildMessage(m))
	sent, err := svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		c.log.WarnContext(ctx, "gmail send failed", slog.String("error", err.Error()))
		return nil, mapError("send mail", err)
	}

	c.log.InfoContext(ctx, "gmail message sent", slog.String("message_id", sent.Id))
	return &SentMail{MessageID: sent.Id, ThreadID: sent.ThreadId, Refreshed: s.refreshed()}, nil
}

// BuildMessage renders m as an RFC 2822 message. A missing From lets Gmail
// fill in the account address. Callers must reject CR and LF in headers.
func BuildMessage(m Mail) []byte {
	from := m.From
	if from == "" {
		from = "me"
	}

	var b bytes.Buffer
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + m.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", m.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.Body)
	return b.Bytes()
}
