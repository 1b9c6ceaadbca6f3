package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResidentDraftUpdatesOnlyProvidedFields(t *testing.T) {
	updates, err := (&ResidentDraft{Flat: "B-202"}).Updates()
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"flat": "B-202"}, updates)
}

func TestPaymentDraftUpdatesRejectBadEnums(t *testing.T) {
	_, err := (&PaymentDraft{Status: "late"}).Updates()
	assert.Error(t, err)

	_, err = (&PaymentDraft{Year: 1999}).Updates()
	assert.Error(t, err)

	updates, err := (&PaymentDraft{Status: "paid"}).Updates()
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": "paid"}, updates)
}

func TestAnnouncementDraftModelDefaultsAuthor(t *testing.T) {
	a := (&AnnouncementDraft{Title: "t", Content: "c", Priority: "low", Category: "general"}).Model()
	assert.Equal(t, DefaultAuthor, a.Author)

	b := (&AnnouncementDraft{Title: "t", Content: "c", Priority: "low", Category: "general", Author: "Watchman"}).Model()
	assert.Equal(t, "Watchman", b.Author)
}
