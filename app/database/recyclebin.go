package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"epic-gym-system/app/models"

	"github.com/lib/pq"
)

// Recycle-bin errors. ErrArchiveFailed is the critical safety boundary: it
// means the snapshot insert failed and the destructive delete never ran.
var (
	ErrArchiveFailed   = errors.New("could not back up records before delete - nothing was deleted")
	ErrUnknownTable    = errors.New("table is not managed by the recycle bin")
	ErrEntryNotFound   = errors.New("recycle bin entry not found")
	ErrNoRowsToArchive = errors.New("no matching rows found to delete")
)

// recycleBinTables whitelists the finance tables the recycle bin may touch.
// Table names are interpolated into SQL identifiers, so membership here is
// what keeps SoftDelete/Restore injection-safe.
var recycleBinTables = map[string]bool{
	"payments": true,
	"refunds":  true,
	"expenses": true,
}

// RecycleBinTableAllowed reports whether the recycle bin manages table.
func RecycleBinTableAllowed(table string) bool {
	return recycleBinTables[table]
}

// SoftDelete archives the full contents of the identified rows into
// finance_history and then deletes the originals from table. Snapshot and
// delete run in one transaction, strictly in that order: if the snapshot
// insert fails nothing is deleted and ErrArchiveFailed is returned. Returns
// the number of rows archived and deleted.
func SoftDelete(db *sql.DB, table string, ids []string, actor string) (int, error) {
	if !recycleBinTables[table] {
		return 0, ErrUnknownTable
	}
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	// Snapshot before delete. to_jsonb captures every column of the source
	// row, so the history entry alone can reconstruct it.
	snapshotQuery := fmt.Sprintf(`
		INSERT INTO finance_history (table_name, row_id, row_data, action, created_by)
		SELECT $1, t.id, to_jsonb(t), 'DELETE', $2
		FROM %s t
		WHERE t.id = ANY($3)`, table)

	res, err := tx.Exec(snapshotQuery, table, actor, pq.Array(ids))
	if err != nil {
		log.Printf("Recycle bin snapshot failed for %s: %v", table, err)
		return 0, fmt.Errorf("%w: %v", ErrArchiveFailed, err)
	}

	archived, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrArchiveFailed, err)
	}
	if archived == 0 {
		return 0, ErrNoRowsToArchive
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE id = ANY($1)`, table)
	if _, err := tx.Exec(deleteQuery, pq.Array(ids)); err != nil {
		// Rollback also discards the snapshots, so no duplicate archive
		// entries are left behind.
		return 0, fmt.Errorf("failed to delete rows from %s: %v", table, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(archived), nil
}

// Restore re-inserts an archived row into its source table and removes the
// history entry. If the insert fails the entry is kept, so restore is safe
// to retry. The restored row normally keeps its original id, but callers
// must not rely on id stability across a delete/restore cycle.
func Restore(db *sql.DB, historyID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var table string
	var rowData []byte
	err = tx.QueryRow(`SELECT table_name, row_data FROM finance_history
		WHERE id = $1 AND action = 'DELETE'`, historyID).Scan(&table, &rowData)
	if err == sql.ErrNoRows {
		return ErrEntryNotFound
	}
	if err != nil {
		return err
	}

	if !recycleBinTables[table] {
		return ErrUnknownTable
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s SELECT * FROM jsonb_populate_record(NULL::%s, $1::jsonb)`, table, table)
	if _, err := tx.Exec(insertQuery, rowData); err != nil {
		return fmt.Errorf("failed to restore row into %s: %v", table, err)
	}

	if _, err := tx.Exec(`DELETE FROM finance_history WHERE id = $1`, historyID); err != nil {
		return err
	}

	return tx.Commit()
}

// GetRecycleBinEntries lists archived rows, optionally restricted to one
// source table, newest first.
func GetRecycleBinEntries(db *sql.DB, tableFilter string) ([]*models.FinanceHistoryEntry, error) {
	query := `SELECT id, table_name, row_id, row_data, action, created_by, created_at
			  FROM finance_history
			  WHERE action = 'DELETE'`
	args := []interface{}{}
	if tableFilter != "" {
		query += ` AND table_name = $1`
		args = append(args, tableFilter)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.FinanceHistoryEntry{}
	for rows.Next() {
		e := &models.FinanceHistoryEntry{}
		err := rows.Scan(&e.ID, &e.TableName, &e.RowID, &e.RowData, &e.Action, &e.CreatedBy, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// PurgeRecycleBin permanently deletes archived entries. This is the terminal
// state: purged rows are unrecoverable. An empty tableFilter purges the whole
// bin. Returns the number of entries removed.
func PurgeRecycleBin(db *sql.DB, tableFilter string) (int, error) {
	query := `DELETE FROM finance_history WHERE action = 'DELETE'`
	args := []interface{}{}
	if tableFilter != "" {
		query += ` AND table_name = $1`
		args = append(args, tableFilter)
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	purged, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(purged), nil
}

// CountRecycleBinEntries returns the number of rows currently in the bin.
func CountRecycleBinEntries(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM finance_history WHERE action = 'DELETE'`).Scan(&count)
	return count, err
}
