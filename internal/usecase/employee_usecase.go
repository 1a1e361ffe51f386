package usecase

import (
	"errors"
	"strings"
	"time"

	"hr-payroll/internal/apperror"
	"hr-payroll/internal/model"
	"hr-payroll/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type AddEmployeeInput struct {
	Name     string
	Email    string
	Position string
	Salary   decimal.Decimal
	JoinDate string // optional, YYYY-MM-DD
}

type EmployeeUsecase struct {
	repo repository.EmployeeRepository
}

func NewEmployeeUsecase(repo repository.EmployeeRepository) *EmployeeUsecase {
	return &EmployeeUsecase{repo: repo}
}

func (u *EmployeeUsecase) Add(in AddEmployeeInput) (*model.Employee, error) {
	employee := &model.Employee{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Position: strings.TrimSpace(in.Position),
		Salary:   in.Salary.Round(2),
		JoinDate: time.Now().UTC(),
	}

	switch {
	case employee.Name == "":
		return nil, apperror.Required("name")
	case employee.Email == "":
		return nil, apperror.Required("email")
	case employee.Position == "":
		return nil, apperror.Required("position")
	}
	if !employee.Salary.IsPositive() {
		return nil, apperror.Validation("Salary must be greater than zero")
	}

	if in.JoinDate != "" {
		joined, err := time.Parse(dateLayout, in.JoinDate)
		if err != nil {
			return nil, apperror.Invalid("Invalid join date format, expected YYYY-MM-DD", err)
		}
		employee.JoinDate = joined
	}

	if err := u.repo.Create(employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Duplicate("An employee with this email already exists", err)
		}
		return nil, apperror.DB("Failed to add employee", err)
	}
	return employee, nil
}

func (u *EmployeeUsecase) List() ([]model.Employee, error) {
	employees, err := u.repo.GetAll()
	if err != nil {
		return nil, apperror.DB("Failed to load employees", err)
	}
	return employees, nil
}

// Delete removes the employee and, with it, all attendance and payroll rows.
func (u *EmployeeUsecase) Delete(id uint) error {
	if id == 0 {
		return apperror.Required("employee_id")
	}
	if err := u.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Employee not found")
		}
		return apperror.DB("Failed to delete employee", err)
	}
	return nil
}
