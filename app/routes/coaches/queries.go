package coaches

import (
	"database/sql"
	"log"
	"time"

	"epic-gym-system/app/models"
)

// InitCoachesDB ensures the coaches and coach_attendances tables exist.
func InitCoachesDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS coaches (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			full_name VARCHAR(255) NOT NULL,
			role VARCHAR(50),
			salary DECIMAL(10,2) NOT NULL DEFAULT 0,
			pt_rate DECIMAL(10,2) NOT NULL DEFAULT 0,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS coach_attendances (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			coach_id UUID NOT NULL REFERENCES coaches(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			status VARCHAR(20) NOT NULL,
			remarks TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (coach_id, date)
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating coaches tables: %v", err)
			return err
		}
	}

	migrations := []string{
		`CREATE INDEX IF NOT EXISTS idx_coach_attendances_date ON coach_attendances(date)`,
		`CREATE INDEX IF NOT EXISTS idx_coaches_deleted_at ON coaches(deleted_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running coaches migration: %v", err)
		}
	}

	return nil
}

func GetCoachByID(db *sql.DB, id string) (*models.Coach, error) {
	c := &models.Coach{}
	query := `SELECT id, full_name, COALESCE(role, ''), COALESCE(salary, 0), COALESCE(pt_rate, 0),
			  COALESCE(phone, ''), is_active, created_at, updated_at
			  FROM coaches WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, id).Scan(&c.ID, &c.FullName, &c.Role, &c.Salary, &c.PTRate,
		&c.Phone, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateCoach(db *sql.DB, c *models.Coach) error {
	query := `INSERT INTO coaches (full_name, role, salary, pt_rate, phone)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, is_active, created_at, updated_at`
	return db.QueryRow(query, c.FullName, c.Role, c.Salary, c.PTRate, c.Phone).
		Scan(&c.ID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
}

func UpdateCoach(db *sql.DB, c *models.Coach) error {
	query := `UPDATE coaches
			  SET full_name = $1, role = $2, salary = $3, pt_rate = $4, phone = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`
	_, err := db.Exec(query, c.FullName, c.Role, c.Salary, c.PTRate, c.Phone, c.ID)
	return err
}

func DeactivateCoach(db *sql.DB, id string) error {
	query := `UPDATE coaches SET is_active = false, deleted_at = NOW(), updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, id)
	return err
}

// UpsertAttendance saves a coach's attendance for a day; a second check-in
// on the same day overwrites the first.
func UpsertAttendance(db *sql.DB, a *models.CoachAttendance) error {
	query := `INSERT INTO coach_attendances (coach_id, date, status, remarks)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (coach_id, date)
			  DO UPDATE SET status = EXCLUDED.status, remarks = EXCLUDED.remarks, updated_at = NOW()`
	_, err := db.Exec(query, a.CoachID, a.Date, a.Status, a.Remarks)
	return err
}

// GetAttendanceByDate returns all coach attendance records for a day.
func GetAttendanceByDate(db *sql.DB, date time.Time) ([]*models.CoachAttendance, error) {
	query := `SELECT ca.id, ca.coach_id, ca.date, ca.status, COALESCE(ca.remarks, ''),
			  ca.created_at, ca.updated_at, co.full_name
			  FROM coach_attendances ca
			  JOIN coaches co ON ca.coach_id = co.id
			  WHERE ca.date = $1
			  ORDER BY co.full_name`

	rows, err := db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.CoachAttendance{}
	for rows.Next() {
		a := &models.CoachAttendance{}
		var coachName string
		err := rows.Scan(&a.ID, &a.CoachID, &a.Date, &a.Status, &a.Remarks,
			&a.CreatedAt, &a.UpdatedAt, &coachName)
		if err != nil {
			return nil, err
		}
		a.Coach = &models.Coach{ID: a.CoachID, FullName: coachName}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetAttendanceForMonth returns one coach's attendance within a month.
func GetAttendanceForMonth(db *sql.DB, coachID string, start, end time.Time) ([]*models.CoachAttendance, error) {
	query := `SELECT id, coach_id, date, status, COALESCE(remarks, ''), created_at, updated_at
			  FROM coach_attendances
			  WHERE coach_id = $1 AND date >= $2 AND date < $3
			  ORDER BY date`

	rows, err := db.Query(query, coachID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.CoachAttendance{}
	for rows.Next() {
		a := &models.CoachAttendance{}
		err := rows.Scan(&a.ID, &a.CoachID, &a.Date, &a.Status, &a.Remarks, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
