package repository

import (
	"hr-payroll/internal/model"

	"gorm.io/gorm"
)

type PayrollRepository interface {
	Create(payroll *model.Payroll) error
	GetAll() ([]model.Payroll, error)
	FindByID(id uint) (*model.Payroll, error)
	UpdateStatus(id uint, status, comments string) error
}

type payrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db}
}

// Create relies on idx_payroll_employee_period for duplicate prevention.
func (r *payrollRepository) Create(payroll *model.Payroll) error {
	return r.db.Create(payroll).Error
}

func (r *payrollRepository) GetAll() ([]model.Payroll, error) {
	var list []model.Payroll
	err := r.db.Preload("Employee").
		Order("year desc").Order("month desc").Order("id desc").
		Find(&list).Error
	return list, err
}

func (r *payrollRepository) FindByID(id uint) (*model.Payroll, error) {
	var payroll model.Payroll
	if err := r.db.Preload("Employee").First(&payroll, id).Error; err != nil {
		return nil, err
	}
	return &payroll, nil
}

// UpdateStatus is the only in-place change a payroll row ever gets.
func (r *payrollRepository) UpdateStatus(id uint, status, comments string) error {
	result := r.db.Model(&model.Payroll{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      status,
		"hr_comments": comments,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
