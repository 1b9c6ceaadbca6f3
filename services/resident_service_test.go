package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
	"github.com/NEMOzzzzzzzzzz/sms/models"
)

// setupMockDB opens a GORM handle over sqlmock so service queries can be
// scripted without a real MySQL.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gdb, mock
}

func residentRows(residents ...models.Resident) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "flat", "contact"})
	for _, r := range residents {
		rows.AddRow(r.ID, r.CreatedAt, r.UpdatedAt, r.Name, r.Flat, r.Contact)
	}
	return rows
}

func TestListResidents_Success(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewResidentService(gdb, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents`")).
		WillReturnRows(residentRows(
			models.Resident{BaseModel: models.BaseModel{ID: 1}, Name: "John Doe", Flat: "A-101", Contact: "9999999999"},
			models.Resident{BaseModel: models.BaseModel{ID: 2}, Name: "Jane Doe", Flat: "A-102", Contact: "8888888888"},
		))

	residents, err := svc.ListResidents(context.Background())
	require.NoError(t, err)
	require.Len(t, residents, 2)
	assert.Equal(t, "John Doe", residents[0].Name)
	assert.Equal(t, "A-102", residents[1].Flat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListResidents_EmptyIsNotNil(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewResidentService(gdb, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents`")).
		WillReturnRows(residentRows())

	residents, err := svc.ListResidents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, residents)
	assert.Empty(t, residents)
}

func TestListResidents_StorageUnavailable(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewResidentService(gdb, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents`")).
		WillReturnError(errors.New("connection refused"))

	_, err := svc.ListResidents(context.Background())
	require.Error(t, err)
	assert.True(t, code.Is(err, code.ErrStorageUnavailable))
}

func TestCreateResident_Success(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewResidentService(gdb, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `residents`")).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	draft := &models.ResidentDraft{Name: "John Doe", Flat: "A-101", Contact: "9999999999"}
	resident, err := svc.CreateResident(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, uint(7), resident.ID)
	assert.Equal(t, draft.Name, resident.Name)
	assert.Equal(t, draft.Flat, resident.Flat)
	assert.Equal(t, draft.Contact, resident.Contact)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateResident_MissingFields(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewResidentService(gdb, nil)

	cases := []struct {
		name  string
		draft models.ResidentDraft
		field string
	}{
		{"no name", models.ResidentDraft{Flat: "A-101", Contact: "9999999999"}, "name"},
		{"no flat", models.ResidentDraft{Name: "John Doe", Contact: "9999999999"}, "flat"},
		{"no contact", models.ResidentDraft{Name: "John Doe", Flat: "A-101"}, "contact"},
		{"blank name", models.ResidentDraft{Name: "   ", Flat: "A-101", Contact: "9999999999"}, "name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := tc.draft
			_, err := svc.CreateResident(context.Background(), &draft)
			require.Error(t, err)
			assert.True(t, code.Is(err, code.ErrValidation))
			var ce *code.Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.field, ce.Field)
		})
	}
	// No SQL was ever issued: validation failures persist nothing.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateResident_Success(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewResidentService(gdb, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents` WHERE `residents`.`id` = ?")).
		WillReturnRows(residentRows(
			models.Resident{BaseModel: models.BaseModel{ID: 3}, Name: "John Doe", Flat: "A-101", Contact: "9999999999"},
		))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `residents` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents` WHERE `residents`.`id` = ?")).
		WillReturnRows(residentRows(
			models.Resident{BaseModel: models.BaseModel{ID: 3}, Name: "John Doe", Flat: "B-202", Contact: "9999999999"},
		))

	resident, err := svc.UpdateResident(context.Background(), 3, &models.ResidentDraft{Flat: "B-202"})
	require.NoError(t, err)
	assert.Equal(t, "B-202", resident.Flat)
	// Unspecified fields stay as they were.
	assert.Equal(t, "John Doe", resident.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateResident_NotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewResidentService(gdb, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents` WHERE `residents`.`id` = ?")).
		WillReturnRows(residentRows())

	_, err := svc.UpdateResident(context.Background(), 42, &models.ResidentDraft{Name: "Ghost"})
	require.Error(t, err)
	assert.True(t, code.Is(err, code.ErrNotFound))
}

func TestDeleteResident_Success(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewResidentService(gdb, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents` WHERE `residents`.`id` = ?")).
		WillReturnRows(residentRows(
			models.Resident{BaseModel: models.BaseModel{ID: 5}, Name: "John Doe", Flat: "A-101", Contact: "9999999999"},
		))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `residents`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeleteResident(context.Background(), 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteResident_NotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	svc := NewResidentService(gdb, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents` WHERE `residents`.`id` = ?")).
		WillReturnRows(residentRows())

	err := svc.DeleteResident(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, code.Is(err, code.ErrNotFound))
}
