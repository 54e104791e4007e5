// Package notify tells every giver of a draw who they offer a gift to.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/services/mail"

	"github.com/google/logger"
	"gorm.io/datatypes"
)

type UserReader interface {
	GetUser(ctx context.Context, id models.ID) (*postgres.User, error)
}

type PhoneQueue interface {
	SavePhoneNotification(ctx context.Context, n *postgres.PhoneNotification) error
}

type EventContext struct {
	ID   models.ID
	Name string
}

// Report counts the outcome of one fan-out.
type Report struct {
	Emailed int
	Queued  int
	Skipped int
	Failed  int
}

func (r Report) String() string {
	return fmt.Sprintf("emailed=%d queued=%d skipped=%d failed=%d", r.Emailed, r.Queued, r.Skipped, r.Failed)
}

type Notifier struct {
	users     UserReader
	mailer    mail.Mailer
	phones    PhoneQueue
	sender    string
	proxyBase string
}

func NewNotifier(users UserReader, mailer mail.Mailer, phones PhoneQueue, sender, proxyBase string) *Notifier {
	return &Notifier{
		users:     users,
		mailer:    mailer,
		phones:    phones,
		sender:    sender,
		proxyBase: strings.TrimRight(proxyBase, "/"),
	}
}

// Notify handles each draw on its own; a failure is logged and never stops the others.
func (n *Notifier) Notify(ctx context.Context, draws []postgres.Draw, event EventContext) Report {
	var r Report
	for _, d := range draws {
		receiver, err := n.users.GetUser(ctx, d.ReceiverID)
		if err != nil {
			logger.Warningf("notify: receiver %s of draw %s not found: %v", d.ReceiverID, d.ID, err)
			r.Skipped++
			continue
		}
		giver, err := n.users.GetUser(ctx, d.GiverID)
		if err != nil {
			logger.Warningf("notify: giver %s of draw %s not found: %v", d.GiverID, d.ID, err)
			r.Skipped++
			continue
		}

		switch {
		case giver.Email != nil && *giver.Email != "":
			err = n.sendEmail(ctx, d, event, giver, receiver)
			if err == nil {
				r.Emailed++
			}
		case giver.Phone != nil && *giver.Phone != "":
			err = n.queuePhone(ctx, d, event, giver, receiver)
			if err == nil {
				r.Queued++
			}
		default:
			logger.Warningf("notify: giver %s has no email nor phone", giver.ID)
			r.Skipped++
			continue
		}
		if err != nil {
			logger.Errorf("notify: draw %s of event %s: %v", d.ID, event.ID, err)
			r.Failed++
		}
	}
	return r
}

func (n *Notifier) sendEmail(ctx context.Context, d postgres.Draw, event EventContext, giver, receiver *postgres.User) error {
	return n.mailer.SendDrawResult(ctx, mail.DrawMessage{
		From:          n.sender,
		To:            *giver.Email,
		Subject:       Subject(event.Name),
		ReceiverFirst: receiver.FirstName,
		ReceiverLast:  receiver.LastName,
		Link:          n.link(d.Token, "email", *giver.Email),
	})
}

func (n *Notifier) queuePhone(ctx context.Context, d postgres.Draw, event EventContext, giver, receiver *postgres.User) error {
	payload, err := json.Marshal(map[string]any{
		"event":    event.Name,
		"giver":    giver.Profile(),
		"receiver": receiver.Profile(),
		"link":     n.link(d.Token, "phone", *giver.Phone),
	})
	if err != nil {
		return err
	}
	return n.phones.SavePhoneNotification(ctx, &postgres.PhoneNotification{
		DrawID:  d.ID,
		EventID: event.ID,
		Phone:   *giver.Phone,
		Payload: datatypes.JSON(payload),
	})
}

// link builds the proxy URL a giver follows to see their receiver.
func (n *Notifier) link(token, key, contact string) string {
	return n.proxyBase + "/" + url.PathEscape(token) + "?" + key + "=" + url.QueryEscape(contact)
}

func Subject(eventName string) string {
	return eventName + " - Découvrir votre tirage au sort"
}
