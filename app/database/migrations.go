package database

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// RunMigrations creates the core auth tables and seeds the default roles.
// Domain tables (students, coaches, finance) are created by their route
// packages' Init*DB functions.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			last_login_at TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating core tables: %v", err)
			return err
		}
	}

	seeds := []string{
		`INSERT INTO roles (name, is_active) VALUES ('admin', true) ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name, is_active) VALUES ('reception', true) ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name, is_active) VALUES ('coach', true) ON CONFLICT (name) DO NOTHING`,
	}

	for _, s := range seeds {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Error seeding roles: %v", err)
			return err
		}
	}

	if err := seedDefaultAdmin(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// seedDefaultAdmin creates the initial admin account when the users table is
// empty, so a fresh install is reachable.
func seedDefaultAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 14)
	if err != nil {
		return err
	}

	var userID string
	err = db.QueryRow(`INSERT INTO users (email, password, first_name, last_name)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		"admin@epicgym.local", string(hash), "System", "Admin").Scan(&userID)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = 'admin'`, userID)
	if err != nil {
		return err
	}

	log.Println("Seeded default admin account (admin@epicgym.local) - change the password immediately")
	return nil
}
