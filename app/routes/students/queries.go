package students

import (
	"database/sql"
	"encoding/json"
	"log"

	"epic-gym-system/app/models"
)

// InitStudentsDB ensures the students and training_groups tables exist.
func InitStudentsDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS training_groups (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			schedule_key TEXT UNIQUE NOT NULL,
			slots JSONB,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			full_name VARCHAR(255) NOT NULL,
			phone VARCHAR(20),
			plan_months INT NOT NULL DEFAULT 1,
			start_date DATE NOT NULL,
			expires_at DATE NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			group_id UUID REFERENCES training_groups(id) ON DELETE SET NULL,
			notes TEXT,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating students tables: %v", err)
			return err
		}
	}

	migrations := []string{
		`CREATE INDEX IF NOT EXISTS idx_students_expires_at ON students(expires_at)`,
		`CREATE INDEX IF NOT EXISTS idx_students_group_id ON students(group_id)`,
		`CREATE INDEX IF NOT EXISTS idx_students_deleted_at ON students(deleted_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running students migration: %v", err)
		}
	}

	return nil
}

// GetOrCreateGroup dedupes training groups by schedule key: a group whose
// schedule matches the submitted slots is reused, otherwise one is created.
func GetOrCreateGroup(db *sql.DB, slots []*models.ScheduleSlot) (*models.TrainingGroup, error) {
	key := BuildScheduleKey(slots)

	group := &models.TrainingGroup{}
	err := db.QueryRow(`SELECT id, name, schedule_key, created_at, updated_at
		FROM training_groups WHERE schedule_key = $1 AND deleted_at IS NULL`, key).
		Scan(&group.ID, &group.Name, &group.ScheduleKey, &group.CreatedAt, &group.UpdatedAt)
	if err == nil {
		group.Slots = slots
		return group, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		return nil, err
	}

	group.Name = GroupNameFromSlots(slots)
	group.ScheduleKey = key
	group.Slots = slots
	err = db.QueryRow(`INSERT INTO training_groups (name, schedule_key, slots)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		group.Name, key, slotsJSON).
		Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// GetAllStudents returns live students with their group names.
func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT s.id, s.full_name, COALESCE(s.phone, ''), s.plan_months, s.start_date, s.expires_at,
			  s.status, s.group_id, COALESCE(s.notes, ''), s.is_active, s.created_at, s.updated_at,
			  g.id, g.name
			  FROM students s
			  LEFT JOIN training_groups g ON s.group_id = g.id
			  WHERE s.deleted_at IS NULL
			  ORDER BY s.full_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		var groupID, groupName sql.NullString
		err := rows.Scan(&s.ID, &s.FullName, &s.Phone, &s.PlanMonths, &s.StartDate, &s.ExpiresAt,
			&s.Status, &s.GroupID, &s.Notes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&groupID, &groupName)
		if err != nil {
			return nil, err
		}
		if groupID.Valid {
			s.Group = &models.TrainingGroup{ID: groupID.String, Name: groupName.String}
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, full_name, COALESCE(phone, ''), plan_months, start_date, expires_at,
			  status, group_id, COALESCE(notes, ''), is_active, created_at, updated_at
			  FROM students WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, id).Scan(&s.ID, &s.FullName, &s.Phone, &s.PlanMonths,
		&s.StartDate, &s.ExpiresAt, &s.Status, &s.GroupID, &s.Notes, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (full_name, phone, plan_months, start_date, expires_at, status, group_id, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, s.FullName, s.Phone, s.PlanMonths, s.StartDate, s.ExpiresAt,
		s.Status, s.GroupID, s.Notes).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students
			  SET full_name = $1, phone = $2, plan_months = $3, start_date = $4, expires_at = $5,
			      status = $6, group_id = $7, notes = $8, updated_at = NOW()
			  WHERE id = $9 AND deleted_at IS NULL`
	_, err := db.Exec(query, s.FullName, s.Phone, s.PlanMonths, s.StartDate, s.ExpiresAt,
		s.Status, s.GroupID, s.Notes, s.ID)
	return err
}

// DeactivateStudent soft-disables a student record. Students are not
// financial rows, so they do not go through the recycle bin.
func DeactivateStudent(db *sql.DB, id string) error {
	query := `UPDATE students SET is_active = false, deleted_at = NOW(), updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, id)
	return err
}

// GetAllGroups lists training groups with member counts.
func GetAllGroups(db *sql.DB) ([]*models.TrainingGroup, error) {
	query := `SELECT g.id, g.name, g.schedule_key, g.slots, g.created_at, g.updated_at,
			  COUNT(s.id) AS member_count
			  FROM training_groups g
			  LEFT JOIN students s ON s.group_id = g.id AND s.is_active = true AND s.deleted_at IS NULL
			  WHERE g.deleted_at IS NULL
			  GROUP BY g.id, g.name, g.schedule_key, g.slots, g.created_at, g.updated_at
			  ORDER BY g.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []*models.TrainingGroup{}
	for rows.Next() {
		g := &models.TrainingGroup{}
		var slotsJSON []byte
		err := rows.Scan(&g.ID, &g.Name, &g.ScheduleKey, &slotsJSON, &g.CreatedAt, &g.UpdatedAt, &g.MemberCount)
		if err != nil {
			return nil, err
		}
		if len(slotsJSON) > 0 {
			if err := json.Unmarshal(slotsJSON, &g.Slots); err != nil {
				log.Printf("Failed to decode slots for group %s: %v", g.ID, err)
			}
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
