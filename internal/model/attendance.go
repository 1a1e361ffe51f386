package model

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfDay = "half-day"
)

// Attendance is one employee's record for one calendar date.
type Attendance struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	EmployeeID  uint      `json:"employee_id" gorm:"not null;uniqueIndex:idx_attendance_employee_date,priority:1"`
	Date        string    `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_employee_date,priority:2"` // YYYY-MM-DD
	Status      string    `json:"status" gorm:"size:20;not null"`                                                   // present/absent/half-day
	ArrivalTime *string   `json:"arrival_time" gorm:"size:5"`                                                       // HH:MM, nil when absent
	IsLate      bool      `json:"is_late" gorm:"not null;default:false"`
	LateMinutes int       `json:"late_minutes" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"-"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func IsValidAttendanceStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}
