package repository

import (
	"hr-payroll/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	FindByID(id uint) (*model.Employee, error)
	GetAll() ([]model.Employee, error)
	Delete(id uint) error
	Count() (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Order("id asc").Find(&employees).Error
	return employees, err
}

// Delete removes the employee together with its attendance and payroll rows.
// Children are deleted explicitly so the cascade also holds on databases
// where foreign keys are not enforced.
func (r *employeeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&model.Payroll{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Employee{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *employeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Employee{}).Count(&count).Error
	return count, err
}
