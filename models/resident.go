package models

import (
	"strings"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
)

// Resident is a person living in the society. Flat and Contact carry no
// uniqueness constraint: two residents may share a flat.
type Resident struct {
	BaseModel
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Flat    string `gorm:"type:varchar(20);not null" json:"flat"`
	Contact string `gorm:"type:varchar(100);not null" json:"contact"`
}

// ResidentDraft is the client-supplied field set for creating or updating
// a resident.
type ResidentDraft struct {
	Name    string `json:"name"`
	Flat    string `json:"flat"`
	Contact string `json:"contact"`
}

// Validate checks required-field presence for a create.
func (d *ResidentDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return code.MissingField("name")
	}
	if strings.TrimSpace(d.Flat) == "" {
		return code.MissingField("flat")
	}
	if strings.TrimSpace(d.Contact) == "" {
		return code.MissingField("contact")
	}
	return nil
}

// Model builds the persisted document for a create.
func (d *ResidentDraft) Model() *Resident {
	return &Resident{Name: d.Name, Flat: d.Flat, Contact: d.Contact}
}

// Updates returns the provided (non-empty) fields of a partial draft as a
// column map for merging into an existing document.
func (d *ResidentDraft) Updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if d.Name != "" {
		updates["name"] = d.Name
	}
	if d.Flat != "" {
		updates["flat"] = d.Flat
	}
	if d.Contact != "" {
		updates["contact"] = d.Contact
	}
	return updates, nil
}
