// Package mail delivers draw results by email.
package mail

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/logger"
	"github.com/mailjet/mailjet-apiv3-go/v4"
)

const (
	// DefaultTemplateID is the Mailjet template rendering a draw result.
	DefaultTemplateID = 7499110
	// DefaultTimeout bounds one call to the send API.
	DefaultTimeout = 10 * time.Second
)

// DrawMessage tells a giver who they offer a gift to.
type DrawMessage struct {
	From          string
	To            string
	Subject       string
	ReceiverFirst string
	ReceiverLast  string
	Link          string
}

type Mailer interface {
	SendDrawResult(ctx context.Context, msg DrawMessage) error
}

type MailjetMailer struct {
	client     *mailjet.Client
	templateID int
	senderName string
}

// NewMailjetMailer builds a mailer whose requests give up after timeout, or
// DefaultTimeout when timeout is not positive.
func NewMailjetMailer(publicKey, privateKey string, templateID int, senderName string, timeout time.Duration) *MailjetMailer {
	if templateID == 0 {
		templateID = DefaultTemplateID
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := mailjet.NewMailjetClient(publicKey, privateKey)
	client.SetClient(&http.Client{Timeout: timeout})
	return &MailjetMailer{
		client:     client,
		templateID: templateID,
		senderName: senderName,
	}
}

func (m *MailjetMailer) SendDrawResult(ctx context.Context, msg DrawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	messages := mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{{
		From:             &mailjet.RecipientV31{Email: msg.From, Name: m.senderName},
		To:               &mailjet.RecipientsV31{{Email: msg.To}},
		TemplateID:       m.templateID,
		TemplateLanguage: true,
		Subject:          msg.Subject,
		Variables:        templateVariables(msg),
	}}}
	if _, err := m.client.SendMailV31(&messages, mailjet.WithContext(ctx)); err != nil {
		return fmt.Errorf("mailjet send to %s: %w", msg.To, err)
	}
	return nil
}

func templateVariables(msg DrawMessage) map[string]interface{} {
	return map[string]interface{}{
		"user": map[string]string{
			"firstname": msg.ReceiverFirst,
			"lastname":  msg.ReceiverLast,
		},
		"uuid":   map[string]string{"link": msg.Link},
		"object": msg.Subject,
	}
}

// LogMailer only logs messages. Used when no Mailjet credentials are configured.
type LogMailer struct{}

func (LogMailer) SendDrawResult(_ context.Context, msg DrawMessage) error {
	logger.Infof("mail: would send %q to %s: %s", msg.Subject, msg.To, msg.Link)
	return nil
}
