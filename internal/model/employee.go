package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"size:100;not null"`
	Email     string          `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Position  string          `json:"position" gorm:"size:100;not null"`
	Salary    decimal.Decimal `json:"salary" gorm:"type:decimal(14,2);not null"` // monthly base
	JoinDate  time.Time       `json:"join_date"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`

	// Relasi
	Attendances []Attendance `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Payrolls    []Payroll    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
