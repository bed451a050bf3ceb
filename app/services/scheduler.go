package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")

		// Run the expiry sweep once at startup so a long-stopped instance
		// catches up immediately.
		if _, err := ExpireLapsedSubscriptions(db); err != nil {
			log.Printf("Error expiring subscriptions: %v", err)
		}

		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger shortly after midnight
			if now.Hour() == 0 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [00:05]...")

				if _, err := ExpireLapsedSubscriptions(db); err != nil {
					log.Printf("Error expiring subscriptions: %v", err)
				}
			}
		}
	}()
}
