package main

import (
	"log"

	"epic-gym-system/app/config"
	"epic-gym-system/app/database"
	"epic-gym-system/app/routes/coaches"
	"epic-gym-system/app/routes/finance"
	"epic-gym-system/app/routes/sessions"
	"epic-gym-system/app/routes/students"
)

// migrate brings a database up to the current schema without starting the
// web server. Table creation order matters: finance and pt_sessions carry
// foreign keys into students and coaches.
func main() {
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Core migrations failed:", err)
	}
	if err := students.InitStudentsDB(db); err != nil {
		log.Fatal("Students migrations failed:", err)
	}
	if err := coaches.InitCoachesDB(db); err != nil {
		log.Fatal("Coaches migrations failed:", err)
	}
	if err := sessions.InitSessionsDB(db); err != nil {
		log.Fatal("Sessions migrations failed:", err)
	}
	if err := finance.InitFinanceDB(db); err != nil {
		log.Fatal("Finance migrations failed:", err)
	}

	log.Println("All migrations completed")
}
