package repository

import (
	"fmt"

	"hr-payroll/internal/model"

	"gorm.io/gorm"
)

// AttendanceFilter narrows listings; zero values mean "any".
type AttendanceFilter struct {
	EmployeeID uint
	Year       int
	Month      int
}

type AttendanceRepository interface {
	Create(attendance *model.Attendance) error
	GetAll(filter AttendanceFilter) ([]model.Attendance, error)
	GetByMonth(employeeID uint, year, month int) ([]model.Attendance, error)
	CreateMany(attendances []model.Attendance) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

// Create relies on idx_attendance_employee_date; a second row for the same
// employee and date fails with gorm.ErrDuplicatedKey.
func (r *attendanceRepository) Create(attendance *model.Attendance) error {
	return r.db.Create(attendance).Error
}

func (r *attendanceRepository) CreateMany(attendances []model.Attendance) error {
	return r.db.Create(&attendances).Error
}

func (r *attendanceRepository) GetAll(filter AttendanceFilter) ([]model.Attendance, error) {
	var list []model.Attendance
	query := r.db.Preload("Employee")

	if filter.EmployeeID != 0 {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if prefix := datePrefix(filter.Year, filter.Month); prefix != "" {
		query = query.Where("date LIKE ?", prefix)
	}

	err := query.Order("date desc").Order("id desc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByMonth(employeeID uint, year, month int) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.Where("employee_id = ? AND date LIKE ?", employeeID, datePrefix(year, month)).
		Order("date asc").Find(&list).Error
	return list, err
}

// Dates are stored as YYYY-MM-DD text, so a month is a LIKE prefix.
func datePrefix(year, month int) string {
	switch {
	case year > 0 && month > 0:
		return fmt.Sprintf("%04d-%02d-%%", year, month)
	case year > 0:
		return fmt.Sprintf("%04d-%%", year)
	case month > 0:
		return fmt.Sprintf("%%-%02d-%%", month)
	}
	return ""
}
