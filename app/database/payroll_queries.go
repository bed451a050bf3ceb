package database

import (
	"database/sql"
	"epic-gym-system/app/models"
	"time"
)

// ComputeMonthlyPayroll computes the payroll breakdown for the supplied
// roster and PT session records. Callers must restrict ptSessions to the
// target month; the roster is never filtered, so coaches with zero sessions
// still appear with total == salary. Missing salary or PT rate counts as
// zero; the function never fails.
func ComputeMonthlyPayroll(coaches []*models.Coach, ptSessions []*models.PTSession) ([]*models.CoachPayroll, float64) {
	counts := make(map[string]int, len(coaches))
	for _, s := range ptSessions {
		counts[s.CoachID] += s.SessionsCount
	}

	perCoach := make([]*models.CoachPayroll, 0, len(coaches))
	totalPayroll := 0.0
	for _, c := range coaches {
		sessionCount := counts[c.ID]
		ptEarnings := float64(sessionCount) * c.PTRate
		total := c.Salary + ptEarnings

		perCoach = append(perCoach, &models.CoachPayroll{
			CoachID:      c.ID,
			CoachName:    c.FullName,
			BaseSalary:   c.Salary,
			SessionCount: sessionCount,
			PTEarnings:   ptEarnings,
			Total:        total,
		})
		totalPayroll += total
	}
	return perCoach, totalPayroll
}

// MonthRange returns the first instant of the month and the first instant of
// the next month, for use as an inclusive/exclusive date window.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

// GetActiveCoaches returns the full coaching roster.
func GetActiveCoaches(db *sql.DB) ([]*models.Coach, error) {
	query := `SELECT id, full_name, role, COALESCE(salary, 0), COALESCE(pt_rate, 0), phone, is_active, created_at, updated_at
			  FROM coaches
			  WHERE deleted_at IS NULL AND is_active = true
			  ORDER BY full_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coaches := []*models.Coach{}
	for rows.Next() {
		c := &models.Coach{}
		err := rows.Scan(&c.ID, &c.FullName, &c.Role, &c.Salary, &c.PTRate,
			&c.Phone, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		coaches = append(coaches, c)
	}
	return coaches, rows.Err()
}

// GetPTSessionsForMonth returns all PT sessions dated within the calendar month.
func GetPTSessionsForMonth(db *sql.DB, year, month int) ([]*models.PTSession, error) {
	start, end := MonthRange(year, month)
	query := `SELECT id, coach_id, date, COALESCE(sessions_count, 0), student_id, COALESCE(student_name, ''), created_by, created_at
			  FROM pt_sessions
			  WHERE date >= $1 AND date < $2
			  ORDER BY date`

	rows, err := db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []*models.PTSession{}
	for rows.Next() {
		s := &models.PTSession{}
		err := rows.Scan(&s.ID, &s.CoachID, &s.Date, &s.SessionsCount,
			&s.StudentID, &s.StudentName, &s.CreatedBy, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetMonthlyPayroll fetches the roster and the month's PT sessions and
// computes the payroll report from scratch. Nothing is cached.
func GetMonthlyPayroll(db *sql.DB, year, month int) (*models.PayrollReport, error) {
	coaches, err := GetActiveCoaches(db)
	if err != nil {
		return nil, err
	}

	sessions, err := GetPTSessionsForMonth(db, year, month)
	if err != nil {
		return nil, err
	}

	perCoach, total := ComputeMonthlyPayroll(coaches, sessions)
	return &models.PayrollReport{
		Year:         year,
		Month:        month,
		PerCoach:     perCoach,
		TotalPayroll: total,
	}, nil
}
