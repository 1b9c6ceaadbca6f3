package client

import (
	"time"

	"github.com/NEMOzzzzzzzzzz/sms/models"
)

// Static demo datasets shown when a live fetch fails against a server whose
// backend for the entity is down. They are not a cache: the rows are fixed
// and never derived from a prior successful fetch. Each call returns a
// fresh slice so callers cannot mutate the canned data.

// FallbackPayments returns the demo payment rows.
func FallbackPayments() []models.Payment {
	now := time.Now()
	return []models.Payment{
		{
			BaseModel:  models.BaseModel{ID: 1, CreatedAt: now},
			ResidentID: 1,
			Amount:     5000,
			Type:       "maintenance",
			Month:      "January",
			Year:       2025,
			Status:     "paid",
		},
		{
			BaseModel:  models.BaseModel{ID: 2, CreatedAt: now},
			ResidentID: 2,
			Amount:     5000,
			Type:       "maintenance",
			Month:      "January",
			Year:       2025,
			Status:     "paid",
		},
		{
			BaseModel:  models.BaseModel{ID: 3, CreatedAt: now},
			ResidentID: 1,
			Amount:     1200,
			Type:       "electricity",
			Month:      "January",
			Year:       2025,
			Status:     "pending",
		},
	}
}

// FallbackAnnouncements returns the demo announcement rows.
func FallbackAnnouncements() []models.Announcement {
	now := time.Now()
	return []models.Announcement{
		{
			BaseModel: models.BaseModel{ID: 1, CreatedAt: now},
			Title:     "Society Meeting",
			Content:   "Monthly society meeting scheduled for next Sunday at 10 AM in the community hall.",
			Priority:  "high",
			Category:  "events",
			Author:    models.DefaultAuthor,
		},
		{
			BaseModel: models.BaseModel{ID: 2, CreatedAt: now.Add(-24 * time.Hour)},
			Title:     "Maintenance Work",
			Content:   "Elevator maintenance will be conducted on Saturday. Please use stairs.",
			Priority:  "normal",
			Category:  "maintenance",
			Author:    models.DefaultAuthor,
		},
	}
}
