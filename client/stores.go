package client

import (
	"time"

	"github.com/NEMOzzzzzzzzzz/sms/models"
)

// DefaultResidentDraft is the empty resident form.
func DefaultResidentDraft() models.ResidentDraft {
	return models.ResidentDraft{}
}

// DefaultPaymentDraft mirrors the payment form's initial values.
func DefaultPaymentDraft() models.PaymentDraft {
	return models.PaymentDraft{
		Type:   "maintenance",
		Status: "pending",
		Year:   time.Now().Year(),
	}
}

// DefaultAnnouncementDraft mirrors the announcement form's initial values.
func DefaultAnnouncementDraft() models.AnnouncementDraft {
	return models.AnnouncementDraft{
		Priority: "normal",
		Category: "general",
	}
}

// NewResidentStore builds the resident data store. Residents have a real
// backend everywhere, so no fallback dataset is configured.
func NewResidentStore(c *Client) *Store[models.Resident, models.ResidentDraft] {
	return newStore(
		c.Residents(),
		DefaultResidentDraft,
		func(r *models.Resident) uint { return r.ID },
		func(r *models.Resident) models.ResidentDraft {
			return models.ResidentDraft{Name: r.Name, Flat: r.Flat, Contact: r.Contact}
		},
		nil,
	)
}

// NewPaymentStore builds the payment data store with the demo fallback
// dataset for servers whose payment backend is down.
func NewPaymentStore(c *Client) *Store[models.Payment, models.PaymentDraft] {
	return newStore(
		c.Payments(),
		DefaultPaymentDraft,
		func(p *models.Payment) uint { return p.ID },
		func(p *models.Payment) models.PaymentDraft {
			return models.PaymentDraft{
				ResidentID: p.ResidentID,
				Amount:     p.Amount,
				Type:       p.Type,
				Month:      p.Month,
				Year:       p.Year,
				Status:     p.Status,
			}
		},
		FallbackPayments,
	)
}

// NewAnnouncementStore builds the announcement data store with the demo
// fallback dataset. The author field is not editable, so BeginEdit does not
// copy it.
func NewAnnouncementStore(c *Client) *Store[models.Announcement, models.AnnouncementDraft] {
	return newStore(
		c.Announcements(),
		DefaultAnnouncementDraft,
		func(a *models.Announcement) uint { return a.ID },
		func(a *models.Announcement) models.AnnouncementDraft {
			return models.AnnouncementDraft{
				Title:    a.Title,
				Content:  a.Content,
				Priority: a.Priority,
				Category: a.Category,
			}
		},
		FallbackAnnouncements,
	)
}
