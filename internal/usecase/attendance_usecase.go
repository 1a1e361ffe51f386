package usecase

import (
	"errors"
	"strings"
	"time"

	"hr-payroll/internal/apperror"
	"hr-payroll/internal/model"
	"hr-payroll/internal/payroll"
	"hr-payroll/internal/repository"

	"gorm.io/gorm"
)

type MarkAttendanceInput struct {
	EmployeeID  uint
	Date        string // YYYY-MM-DD
	Status      string
	ArrivalTime string // HH:MM, ignored when absent
}

type AttendanceUsecase struct {
	repo         repository.AttendanceRepository
	employeeRepo repository.EmployeeRepository
	policy       payroll.Policy
}

func NewAttendanceUsecase(repo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *AttendanceUsecase {
	return &AttendanceUsecase{repo: repo, employeeRepo: employeeRepo, policy: payroll.DefaultPolicy}
}

// Mark records one day of attendance. The (employee, date) pair is unique at
// the storage layer; a second mark for the same day is reported as a duplicate.
func (u *AttendanceUsecase) Mark(in MarkAttendanceInput) (*model.Attendance, error) {
	status := strings.ToLower(strings.TrimSpace(in.Status))
	arrival := strings.TrimSpace(in.ArrivalTime)

	switch {
	case in.EmployeeID == 0:
		return nil, apperror.Required("employee_id")
	case strings.TrimSpace(in.Date) == "":
		return nil, apperror.Required("date")
	case status == "":
		return nil, apperror.Required("status")
	}
	if !model.IsValidAttendanceStatus(status) {
		return nil, apperror.Validation("Invalid status, expected one of present, absent, half-day")
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return nil, apperror.Invalid("Invalid date format, expected YYYY-MM-DD", err)
	}

	if _, err := u.employeeRepo.FindByID(in.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Employee not found")
		}
		return nil, apperror.DB("Failed to load employee", err)
	}

	attendance := &model.Attendance{
		EmployeeID: in.EmployeeID,
		Date:       date.Format(dateLayout),
		Status:     status,
	}

	if status != model.StatusAbsent && arrival != "" {
		isLate, minutes, err := u.policy.Lateness(arrival)
		if err != nil {
			return nil, apperror.Invalid("Invalid arrival time format, expected HH:MM", err)
		}
		clock, _ := payroll.ParseClock(arrival)
		normalized := clock.Format("15:04")
		attendance.ArrivalTime = &normalized
		attendance.IsLate = isLate
		attendance.LateMinutes = minutes
	}

	if err := u.repo.Create(attendance); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperror.Duplicate("Attendance already marked for this employee on "+attendance.Date, err)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, apperror.NotFound("Employee not found")
		}
		return nil, apperror.DB("Failed to record attendance", err)
	}
	return attendance, nil
}

func (u *AttendanceUsecase) List(filter repository.AttendanceFilter) ([]model.Attendance, error) {
	list, err := u.repo.GetAll(filter)
	if err != nil {
		return nil, apperror.DB("Failed to load attendance", err)
	}
	return list, nil
}
