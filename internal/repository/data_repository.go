package repository

import (
	"hr-payroll/internal/model"

	"gorm.io/gorm"
)

type DataRepository interface {
	ClearAll() error
}

type dataRepository struct {
	db *gorm.DB
}

func NewDataRepository(db *gorm.DB) DataRepository {
	return &dataRepository{db}
}

// ClearAll empties payroll, attendance and employee tables in one transaction.
func (r *dataRepository) ClearAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []interface{}{&model.Payroll{}, &model.Attendance{}, &model.Employee{}} {
			if err := all.Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
