package usecase

import (
	"hr-payroll/internal/apperror"
	"hr-payroll/internal/repository"

	"github.com/rs/zerolog/log"
)

type DataUsecase struct {
	repo repository.DataRepository
}

func NewDataUsecase(repo repository.DataRepository) *DataUsecase {
	return &DataUsecase{repo: repo}
}

// ClearAll removes every employee, attendance and payroll row.
func (u *DataUsecase) ClearAll() error {
	if err := u.repo.ClearAll(); err != nil {
		return apperror.DB("Failed to clear data", err)
	}
	log.Warn().Msg("all employee, attendance and payroll data cleared")
	return nil
}
