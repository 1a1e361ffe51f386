package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hr-payroll/config"
	"hr-payroll/internal/middleware"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	t       *testing.T
	app     *fiber.App
	db      *gorm.DB
	session *http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := config.OpenDB(config.Config{
		DBDriver: "sqlite",
		DBDSN:    fmt.Sprintf("file:routes_%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	auth, err := usecase.NewAuthUsecase("hr@company.name", "123", "test-secret", time.Hour)
	require.NoError(t, err)

	return &testServer{t: t, app: NewApp(db, auth, Options{DisableCORS: true}), db: db}
}

func (s *testServer) do(method, path string, body interface{}) (int, map[string]interface{}) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(s.t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.session != nil {
		req.AddCookie(s.session)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			s.session = c
		}
	}

	out := map[string]interface{}{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	if len(data) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(data, &out), string(data))
	}
	return resp.StatusCode, out
}

func (s *testServer) login() {
	s.t.Helper()
	status, body := s.do(http.MethodPost, "/login", map[string]string{"username": "hr@company.name", "password": "123"})
	require.Equal(s.t, fiber.StatusOK, status)
	require.Equal(s.t, true, body["success"], body)
	require.NotNil(s.t, s.session)
}

func (s *testServer) addEmployee(email string, salary float64) uint {
	s.t.Helper()
	_, body := s.do(http.MethodPost, "/add_employee", map[string]interface{}{
		"name": "Asha Rao", "email": email, "position": "Engineer", "salary": salary,
	})
	require.Equal(s.t, true, body["success"], body)
	employee := body["employee"].(map[string]interface{})
	return uint(employee["id"].(float64))
}

func TestProtectedRoutesRequireLogin(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(http.MethodGet, "/employees", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])

	status, _ = s.do(http.MethodGet, "/", nil)
	assert.Equal(t, fiber.StatusFound, status)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(http.MethodPost, "/login", map[string]string{"username": "hr@company.name", "password": "wrong"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["success"])
	assert.Nil(t, s.session)

	s.login()
	status, body = s.do(http.MethodGet, "/employees", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, body["employees"])

	status, _ = s.do(http.MethodGet, "/", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestEmployeeEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.login()

	id := s.addEmployee("asha@company.name", 30000)

	_, body := s.do(http.MethodPost, "/add_employee", map[string]interface{}{
		"name": "Copy", "email": "asha@company.name", "position": "QA", "salary": 100,
	})
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "An employee with this email already exists", body["message"])

	_, body = s.do(http.MethodPost, "/add_employee", map[string]interface{}{
		"name": "No Salary", "email": "x@company.name", "position": "QA",
	})
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required field: salary", body["message"])

	_, body = s.do(http.MethodGet, "/employees", nil)
	employees := body["employees"].([]interface{})
	require.Len(t, employees, 1)
	first := employees[0].(map[string]interface{})
	assert.Equal(t, float64(30000), first["salary"])
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), first["join_date"])

	status, body := s.do(http.MethodDelete, fmt.Sprintf("/delete_employee/%d", id), nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	_, body = s.do(http.MethodDelete, fmt.Sprintf("/delete_employee/%d", id), nil)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Employee not found", body["message"])
}

func TestAttendanceEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.login()
	id := s.addEmployee("asha@company.name", 30000)

	// employee_id as a string, the way the HTML select posts it.
	_, body := s.do(http.MethodPost, "/add_attendance", map[string]interface{}{
		"employee_id": fmt.Sprint(id), "date": "2024-04-01", "status": "present", "arrival_time": "09:31",
	})
	require.Equal(t, true, body["success"], body)
	attendance := body["attendance"].(map[string]interface{})
	assert.Equal(t, true, attendance["is_late"])
	assert.Equal(t, float64(1), attendance["late_minutes"])

	_, body = s.do(http.MethodPost, "/add_attendance", map[string]interface{}{
		"employee_id": id, "date": "2024-04-01", "status": "absent",
	})
	assert.Equal(t, false, body["success"])

	_, body = s.do(http.MethodPost, "/add_attendance", map[string]interface{}{
		"employee_id": id, "date": "2024-04-02", "status": "present", "arrival_time": "09:30",
	})
	require.Equal(t, true, body["success"], body)
	assert.Equal(t, false, body["attendance"].(map[string]interface{})["is_late"])

	_, body = s.do(http.MethodPost, "/add_attendance", map[string]interface{}{
		"employee_id": id, "date": "2024-04-03", "status": "present", "arrival_time": "half past nine",
	})
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid arrival time format, expected HH:MM", body["message"])

	_, body = s.do(http.MethodPost, "/add_attendance", map[string]interface{}{"date": "2024-04-03", "status": "present"})
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required field: employee_id", body["message"])

	_, body = s.do(http.MethodGet, "/get_attendance", nil)
	list := body["attendances"].([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, "Asha Rao", list[0].(map[string]interface{})["employee_name"])

	_, body = s.do(http.MethodGet, "/get_attendance?month=5&year=2024", nil)
	assert.Empty(t, body["attendances"])
}

func TestPayrollFlow(t *testing.T) {
	s := newTestServer(t)
	s.login()
	id := s.addEmployee("asha@company.name", 30000)

	for _, a := range []map[string]interface{}{
		{"date": "2024-04-01", "status": "absent"},
		{"date": "2024-04-02", "status": "absent"},
		{"date": "2024-04-03", "status": "half-day", "arrival_time": "09:00"},
	} {
		a["employee_id"] = id
		_, body := s.do(http.MethodPost, "/add_attendance", a)
		require.Equal(t, true, body["success"], body)
	}

	status, body := s.do(http.MethodGet, fmt.Sprintf("/calculate_payroll/%d/2024/4", id), nil)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, true, body["success"], body)
	assert.Equal(t, float64(30000), body["basic_salary"])
	assert.Equal(t, float64(1000), body["daily_salary"])
	assert.Equal(t, float64(250), body["attendance_deduction"])
	assert.Equal(t, float64(29750), body["net_salary"])

	// The UI echoes preview amounts back; the server ignores them.
	_, body = s.do(http.MethodPost, "/generate_payroll", map[string]interface{}{
		"employee_id": fmt.Sprint(id), "month": 4, "year": 2024,
		"basic_salary": 1, "attendance_deduction": 0, "late_deduction": 0,
		"additional_deductions": 0, "additional_allowances": 0, "hr_comments": "",
	})
	require.Equal(t, true, body["success"], body)
	record := body["payroll"].(map[string]interface{})
	assert.Equal(t, float64(29750), record["net_salary"])
	assert.Equal(t, "pending", record["status"])

	_, body = s.do(http.MethodPost, "/generate_payroll", map[string]interface{}{"employee_id": id, "month": 4, "year": 2024})
	assert.Equal(t, false, body["success"])

	_, body = s.do(http.MethodGet, "/payroll", nil)
	list := body["payroll"].([]interface{})
	require.Len(t, list, 1)
	payrollID := uint(list[0].(map[string]interface{})["id"].(float64))
	assert.Equal(t, "Asha Rao", list[0].(map[string]interface{})["employee_name"])

	_, body = s.do(http.MethodPost, fmt.Sprintf("/update_payroll_status/%d", payrollID), map[string]string{"status": "approved", "hr_comments": "ok"})
	require.Equal(t, true, body["success"], body)
	assert.Equal(t, "approved", body["payroll"].(map[string]interface{})["status"])

	_, body = s.do(http.MethodDelete, fmt.Sprintf("/delete_employee/%d", id), nil)
	require.Equal(t, true, body["success"], body)

	_, body = s.do(http.MethodGet, "/payroll", nil)
	assert.Empty(t, body["payroll"])
	_, body = s.do(http.MethodGet, "/get_attendance", nil)
	assert.Empty(t, body["attendances"])
}

func TestClearData(t *testing.T) {
	s := newTestServer(t)
	s.login()
	id := s.addEmployee("asha@company.name", 30000)
	_, body := s.do(http.MethodPost, "/add_attendance", map[string]interface{}{"employee_id": id, "date": "2024-04-01", "status": "present"})
	require.Equal(t, true, body["success"], body)

	status, body := s.do(http.MethodPost, "/clear_data", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	_, body = s.do(http.MethodGet, "/employees", nil)
	assert.Empty(t, body["employees"])
}

func TestMalformedBodyAndUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	s.login()

	status, body := s.do(http.MethodPost, "/add_employee", "{not json")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["success"])

	status, body = s.do(http.MethodGet, "/calculate_payroll/abc/2024/4", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["success"])

	status, body = s.do(http.MethodGet, "/nope", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
}

func TestDatabaseFailureReturnsGenericError(t *testing.T) {
	s := newTestServer(t)
	s.login()

	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	status, body := s.do(http.MethodGet, "/employees", nil)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "An unexpected error occurred", body["message"])

	status, body = s.do(http.MethodPost, "/add_employee", map[string]interface{}{
		"name": "Asha Rao", "email": "asha@company.name", "position": "Engineer", "salary": 30000,
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "An unexpected error occurred", body["message"])
}

func TestLogoutClearsSession(t *testing.T) {
	s := newTestServer(t)
	s.login()

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(s.session)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	cleared := false
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
