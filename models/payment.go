package models

import (
	"strings"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
)

// Payment type and status enumerations, mirrored by the payment form.
var (
	PaymentTypes    = []string{"maintenance", "electricity", "water", "parking", "other"}
	PaymentStatuses = []string{"pending", "paid", "overdue"}
)

// Years accepted by the payment form.
const (
	PaymentYearMin = 2020
	PaymentYearMax = 2030
)

// Payment is a dues record for a resident. ResidentID is a plain reference;
// its existence is deliberately not checked against the residents table, and
// deleting a resident leaves their payments untouched.
type Payment struct {
	BaseModel
	ResidentID uint    `gorm:"not null;index" json:"resident_id"`
	Amount     float64 `gorm:"not null" json:"amount"`
	Type       string  `gorm:"type:varchar(20);not null" json:"type"`
	Month      string  `gorm:"type:varchar(20);not null" json:"month"`
	Year       int     `gorm:"not null" json:"year"`
	Status     string  `gorm:"type:varchar(10);not null" json:"status"`
}

// PaymentDraft is the client-supplied field set for creating or updating a
// payment.
type PaymentDraft struct {
	ResidentID uint    `json:"resident_id"`
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	Month      string  `json:"month"`
	Year       int     `json:"year"`
	Status     string  `json:"status"`
}

// Validate checks required-field presence and enum membership for a create.
func (d *PaymentDraft) Validate() error {
	if d.ResidentID == 0 {
		return code.MissingField("resident_id")
	}
	if d.Amount <= 0 {
		return code.InvalidField("amount", "must be a positive number")
	}
	if !contains(PaymentTypes, d.Type) {
		return code.InvalidField("type", "must be one of "+strings.Join(PaymentTypes, ", "))
	}
	if strings.TrimSpace(d.Month) == "" {
		return code.MissingField("month")
	}
	if d.Year < PaymentYearMin || d.Year > PaymentYearMax {
		return code.InvalidField("year", "must be between 2020 and 2030")
	}
	if !contains(PaymentStatuses, d.Status) {
		return code.InvalidField("status", "must be one of "+strings.Join(PaymentStatuses, ", "))
	}
	return nil
}

// Model builds the persisted document for a create.
func (d *PaymentDraft) Model() *Payment {
	return &Payment{
		ResidentID: d.ResidentID,
		Amount:     d.Amount,
		Type:       d.Type,
		Month:      d.Month,
		Year:       d.Year,
		Status:     d.Status,
	}
}

// Updates returns the provided fields of a partial draft as a column map,
// rejecting enum values outside their allowed sets.
func (d *PaymentDraft) Updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if d.ResidentID != 0 {
		updates["resident_id"] = d.ResidentID
	}
	if d.Amount != 0 {
		if d.Amount < 0 {
			return nil, code.InvalidField("amount", "must be a positive number")
		}
		updates["amount"] = d.Amount
	}
	if d.Type != "" {
		if !contains(PaymentTypes, d.Type) {
			return nil, code.InvalidField("type", "must be one of "+strings.Join(PaymentTypes, ", "))
		}
		updates["type"] = d.Type
	}
	if d.Month != "" {
		updates["month"] = d.Month
	}
	if d.Year != 0 {
		if d.Year < PaymentYearMin || d.Year > PaymentYearMax {
			return nil, code.InvalidField("year", "must be between 2020 and 2030")
		}
		updates["year"] = d.Year
	}
	if d.Status != "" {
		if !contains(PaymentStatuses, d.Status) {
			return nil, code.InvalidField("status", "must be one of "+strings.Join(PaymentStatuses, ", "))
		}
		updates["status"] = d.Status
	}
	return updates, nil
}
