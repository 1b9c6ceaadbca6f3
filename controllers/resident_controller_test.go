package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NEMOzzzzzzzzzz/sms/config"
	"github.com/NEMOzzzzzzzzzz/sms/routes"
	"github.com/NEMOzzzzzzzzzz/sms/services/container"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// setupRouter builds the full API router over a scripted database.
func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	c := container.NewServiceContainer(gdb, config.LoadConfig(), nil)
	return routes.SetupRouterWithContainer(c), mock
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r, _ := setupRouter(t)
	w := perform(r, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestGetResidents(t *testing.T) {
	r, mock := setupRouter(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "flat", "contact"}).
			AddRow(1, "John Doe", "A-101", "9999999999"))

	w := perform(r, http.MethodGet, "/api/residents", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "John Doe")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetResidents_EmptyListIsJSONArray(t *testing.T) {
	r, mock := setupRouter(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "flat", "contact"}))

	w := perform(r, http.MethodGet, "/api/residents", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetResidents_StorageDown(t *testing.T) {
	r, mock := setupRouter(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents`")).
		WillReturnError(assert.AnError)

	w := perform(r, http.MethodGet, "/api/residents", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCreateResident(t *testing.T) {
	r, mock := setupRouter(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `residents`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := perform(r, http.MethodPost, "/api/residents",
		`{"name":"John Doe","flat":"A-101","contact":"9999999999"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateResident_MissingField(t *testing.T) {
	r, mock := setupRouter(t)

	w := perform(r, http.MethodPost, "/api/residents",
		`{"name":"John Doe","contact":"9999999999"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "flat is required")
	// The database was never touched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateResident_MalformedJSON(t *testing.T) {
	r, _ := setupRouter(t)
	w := perform(r, http.MethodPost, "/api/residents", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestUpdateResident_NotFound(t *testing.T) {
	r, mock := setupRouter(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents` WHERE `residents`.`id` = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "flat", "contact"}))

	w := perform(r, http.MethodPut, "/api/residents/42", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestUpdateResident_BadID(t *testing.T) {
	r, _ := setupRouter(t)
	w := perform(r, http.MethodPut, "/api/residents/abc", `{"name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteResident(t *testing.T) {
	r, mock := setupRouter(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents` WHERE `residents`.`id` = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "flat", "contact"}).
			AddRow(5, "John Doe", "A-101", "9999999999"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `residents`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := perform(r, http.MethodDelete, "/api/residents/5", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Resident deleted")
}

func TestDeleteResident_NotFound(t *testing.T) {
	r, mock := setupRouter(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `residents` WHERE `residents`.`id` = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "flat", "contact"}))

	w := perform(r, http.MethodDelete, "/api/residents/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePayment_BadEnum(t *testing.T) {
	r, _ := setupRouter(t)
	w := perform(r, http.MethodPost, "/api/payments",
		`{"resident_id":1,"amount":100,"type":"rent","month":"May","year":2025,"status":"pending"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "type must be one of")
}

func TestCreateAnnouncement(t *testing.T) {
	r, mock := setupRouter(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `announcements`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := perform(r, http.MethodPost, "/api/announcements",
		`{"title":"Society Meeting","content":"Sunday 10 AM","priority":"high","category":"events"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"author":"Admin"`)
}
