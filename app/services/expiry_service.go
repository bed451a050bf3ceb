package services

import (
	"database/sql"
	"fmt"
	"log"
)

// ExpireLapsedSubscriptions flips students whose subscription ran out to the
// expired status. It only refreshes derived state: no financial rows are
// touched, and re-running it is harmless.
func ExpireLapsedSubscriptions(db *sql.DB) (int, error) {
	query := `UPDATE students
			  SET status = 'expired', updated_at = NOW()
			  WHERE deleted_at IS NULL
			  AND status = 'active'
			  AND expires_at < CURRENT_DATE`

	res, err := db.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("failed to expire lapsed subscriptions: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		log.Printf("Marked %d subscriptions as expired", affected)
	}
	return int(affected), nil
}
