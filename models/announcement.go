package models

import (
	"strings"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
)

// Announcement priority and category enumerations.
var (
	AnnouncementPriorities = []string{"low", "normal", "high", "urgent"}
	AnnouncementCategories = []string{"general", "maintenance", "events", "rules", "emergency"}
)

// DefaultAuthor is filled in when a draft names no author.
const DefaultAuthor = "Admin"

// Announcement is a notice posted to the society board.
type Announcement struct {
	BaseModel
	Title    string `gorm:"type:varchar(200);not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Priority string `gorm:"type:varchar(10);not null" json:"priority"`
	Category string `gorm:"type:varchar(20);not null" json:"category"`
	Author   string `gorm:"type:varchar(100);not null" json:"author"`
}

// AnnouncementDraft is the client-supplied field set for creating or
// updating an announcement.
type AnnouncementDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	Author   string `json:"author"`
}

// Validate checks required-field presence and enum membership for a create.
func (d *AnnouncementDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return code.MissingField("title")
	}
	if strings.TrimSpace(d.Content) == "" {
		return code.MissingField("content")
	}
	if !contains(AnnouncementPriorities, d.Priority) {
		return code.InvalidField("priority", "must be one of "+strings.Join(AnnouncementPriorities, ", "))
	}
	if !contains(AnnouncementCategories, d.Category) {
		return code.InvalidField("category", "must be one of "+strings.Join(AnnouncementCategories, ", "))
	}
	return nil
}

// Model builds the persisted document for a create, defaulting the author.
func (d *AnnouncementDraft) Model() *Announcement {
	author := d.Author
	if author == "" {
		author = DefaultAuthor
	}
	return &Announcement{
		Title:    d.Title,
		Content:  d.Content,
		Priority: d.Priority,
		Category: d.Category,
		Author:   author,
	}
}

// Updates returns the provided fields of a partial draft as a column map,
// rejecting enum values outside their allowed sets.
func (d *AnnouncementDraft) Updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if d.Title != "" {
		updates["title"] = d.Title
	}
	if d.Content != "" {
		updates["content"] = d.Content
	}
	if d.Priority != "" {
		if !contains(AnnouncementPriorities, d.Priority) {
			return nil, code.InvalidField("priority", "must be one of "+strings.Join(AnnouncementPriorities, ", "))
		}
		updates["priority"] = d.Priority
	}
	if d.Category != "" {
		if !contains(AnnouncementCategories, d.Category) {
			return nil, code.InvalidField("category", "must be one of "+strings.Join(AnnouncementCategories, ", "))
		}
		updates["category"] = d.Category
	}
	if d.Author != "" {
		updates["author"] = d.Author
	}
	return updates, nil
}
