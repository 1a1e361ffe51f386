package usecase

import (
	"fmt"
	"strings"
	"testing"

	"hr-payroll/config"
	"hr-payroll/internal/apperror"
	"hr-payroll/internal/model"
	"hr-payroll/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	employees  *EmployeeUsecase
	attendance *AttendanceUsecase
	payroll    *PayrollUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := config.OpenDB(config.Config{
		DBDriver: "sqlite",
		DBDSN:    fmt.Sprintf("file:usecase_%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)

	return &fixture{
		db:         db,
		employees:  NewEmployeeUsecase(employeeRepo),
		attendance: NewAttendanceUsecase(attendanceRepo, employeeRepo),
		payroll:    NewPayrollUsecase(payrollRepo, employeeRepo, attendanceRepo),
	}
}

func (f *fixture) addEmployee(t *testing.T, email, salary string) *model.Employee {
	t.Helper()
	employee, err := f.employees.Add(AddEmployeeInput{
		Name:     "Asha Rao",
		Email:    email,
		Position: "Engineer",
		Salary:   decimal.RequireFromString(salary),
	})
	require.NoError(t, err)
	return employee
}

func requireCode(t *testing.T, err error, code apperror.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code, appErr.Error())
}
