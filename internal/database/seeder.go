package database

import (
	"fmt"
	"time"

	"hr-payroll/internal/model"
	"hr-payroll/internal/payroll"
	"hr-payroll/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedDay struct {
	Status  string
	Arrival string
}

// SeedAll inserts demo employees and a week of attendance for the current
// month. Running it twice leaves the data unchanged.
func SeedAll(db *gorm.DB) error {
	employees := []model.Employee{
		{Name: "Asha Rao", Email: "asha.rao@company.name", Position: "Software Engineer", Salary: decimal.NewFromInt(60000)},
		{Name: "Vikram Shah", Email: "vikram.shah@company.name", Position: "Accountant", Salary: decimal.NewFromInt(45000)},
		{Name: "Meera Iyer", Email: "meera.iyer@company.name", Position: "HR Executive", Salary: decimal.NewFromInt(30000)},
	}

	week := []seedDay{
		{model.StatusPresent, "09:10"},
		{model.StatusPresent, "09:42"},
		{model.StatusHalfDay, "13:05"},
		{model.StatusAbsent, ""},
		{model.StatusPresent, "09:30"},
	}

	now := time.Now()
	return db.Transaction(func(tx *gorm.DB) error {
		attendanceRepo := repository.NewAttendanceRepository(tx)

		for i := range employees {
			e := employees[i]
			e.JoinDate = now.AddDate(0, -6, 0)
			if err := tx.Where(model.Employee{Email: e.Email}).FirstOrCreate(&e).Error; err != nil {
				return fmt.Errorf("seed employee %s: %w", e.Email, err)
			}

			existing, err := attendanceRepo.GetByMonth(e.ID, now.Year(), int(now.Month()))
			if err != nil {
				return fmt.Errorf("load attendance %s: %w", e.Email, err)
			}
			seen := make(map[string]bool, len(existing))
			for _, a := range existing {
				seen[a.Date] = true
			}

			var rows []model.Attendance
			for d, day := range week {
				date := time.Date(now.Year(), now.Month(), d+1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
				if seen[date] {
					continue
				}
				row := model.Attendance{EmployeeID: e.ID, Date: date, Status: day.Status}

				if day.Arrival != "" {
					isLate, minutes, err := payroll.Lateness(day.Arrival)
					if err != nil {
						return err
					}
					arrival := day.Arrival
					row.ArrivalTime = &arrival
					row.IsLate = isLate
					row.LateMinutes = minutes
				}
				rows = append(rows, row)
			}

			if len(rows) > 0 {
				if err := attendanceRepo.CreateMany(rows); err != nil {
					return fmt.Errorf("seed attendance %s: %w", e.Email, err)
				}
			}
			log.Info().Str("email", e.Email).Int("attendance_added", len(rows)).Msg("seeded employee")
		}

		total, err := repository.NewEmployeeRepository(tx).Count()
		if err != nil {
			return err
		}
		log.Info().Int64("employees", total).Msg("seed complete")
		return nil
	})
}
