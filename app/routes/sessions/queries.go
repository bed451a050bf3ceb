package sessions

import (
	"database/sql"
	"log"
	"time"

	"epic-gym-system/app/models"
)

// InitSessionsDB ensures the pt_sessions table exists.
func InitSessionsDB(db *sql.DB) error {
	query := `CREATE TABLE IF NOT EXISTS pt_sessions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		coach_id UUID NOT NULL REFERENCES coaches(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		sessions_count INT NOT NULL DEFAULT 1 CHECK (sessions_count >= 1),
		student_id UUID REFERENCES students(id) ON DELETE SET NULL,
		student_name VARCHAR(255),
		created_by UUID NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`

	if _, err := db.Exec(query); err != nil {
		log.Printf("Error creating pt_sessions table: %v", err)
		return err
	}

	migrations := []string{
		`CREATE INDEX IF NOT EXISTS idx_pt_sessions_coach_id ON pt_sessions(coach_id)`,
		`CREATE INDEX IF NOT EXISTS idx_pt_sessions_date ON pt_sessions(date)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running pt_sessions migration: %v", err)
		}
	}

	return nil
}

// CreatePTSession records delivered personal-training work. Sessions are
// immutable: there is no update or delete path.
func CreatePTSession(db *sql.DB, s *models.PTSession) error {
	query := `INSERT INTO pt_sessions (coach_id, date, sessions_count, student_id, student_name, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`
	return db.QueryRow(query, s.CoachID, s.Date, s.SessionsCount, s.StudentID, s.StudentName, s.CreatedBy).
		Scan(&s.ID, &s.CreatedAt)
}

// GetPTSessionsByCoach lists a coach's sessions within a date window.
func GetPTSessionsByCoach(db *sql.DB, coachID string, start, end time.Time) ([]*models.PTSession, error) {
	query := `SELECT ps.id, ps.coach_id, ps.date, ps.sessions_count, ps.student_id,
			  COALESCE(ps.student_name, ''), ps.created_by, ps.created_at, s.full_name
			  FROM pt_sessions ps
			  LEFT JOIN students s ON ps.student_id = s.id
			  WHERE ps.coach_id = $1 AND ps.date >= $2 AND ps.date < $3
			  ORDER BY ps.date DESC`

	rows, err := db.Query(query, coachID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*models.PTSession{}
	for rows.Next() {
		s := &models.PTSession{}
		var studentName sql.NullString
		err := rows.Scan(&s.ID, &s.CoachID, &s.Date, &s.SessionsCount, &s.StudentID,
			&s.StudentName, &s.CreatedBy, &s.CreatedAt, &studentName)
		if err != nil {
			return nil, err
		}
		if s.StudentID != nil && studentName.Valid {
			s.Student = &models.Student{ID: *s.StudentID, FullName: studentName.String}
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
