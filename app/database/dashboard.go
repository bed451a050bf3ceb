package database

import (
	"database/sql"
	"time"

	"epic-gym-system/app/models"
)

// GetDashboardStats returns statistics for the admin dashboard. Everything
// is recomputed from source rows per request.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM students
		WHERE deleted_at IS NULL AND is_active = true AND status = 'active'`).Scan(&stats.ActiveStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM coaches
		WHERE deleted_at IS NULL AND is_active = true`).Scan(&stats.TotalCoaches)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM students
		WHERE deleted_at IS NULL AND is_active = true
		AND expires_at >= CURRENT_DATE AND expires_at < CURRENT_DATE + INTERVAL '7 days'`).Scan(&stats.ExpiringThisWeek)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary, err := GetMonthlySummary(db, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}
	stats.MonthRevenue = summary.Revenue
	stats.MonthNetProfit = summary.NetProfit

	start, end := MonthRange(now.Year(), int(now.Month()))
	err = db.QueryRow(`SELECT COALESCE(SUM(sessions_count), 0) FROM pt_sessions
		WHERE date >= $1 AND date < $2`, start, end).Scan(&stats.SessionsThisMonth)
	if err != nil {
		return nil, err
	}

	stats.RecycleBinEntries, err = CountRecycleBinEntries(db)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
