package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRecycleBinTableAllowed(t *testing.T) {
	cases := []struct {
		table   string
		allowed bool
	}{
		{"payments", true},
		{"refunds", true},
		{"expenses", true},
		{"students", false},
		{"coaches", false},
		{"finance_history", false},
		{"payments; DROP TABLE payments", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := RecycleBinTableAllowed(tc.table); got != tc.allowed {
			t.Errorf("RecycleBinTableAllowed(%q): expected %v, got %v", tc.table, tc.allowed, got)
		}
	}
}

func TestSoftDelete_RejectsUnknownTable(t *testing.T) {
	// The whitelist is checked before any database work, so a nil handle
	// is safe here.
	_, err := SoftDelete(nil, "students", []string{"id-1"}, "actor")
	if !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestSoftDelete_NoIDsIsNoop(t *testing.T) {
	archived, err := SoftDelete(nil, "payments", nil, "actor")
	if err != nil {
		t.Fatalf("expected no error for empty id list, got %v", err)
	}
	if archived != 0 {
		t.Errorf("expected 0 archived, got %d", archived)
	}
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// A failed snapshot insert must abort the whole operation: the delete never
// runs and the transaction is rolled back, so the source rows stay intact.
func TestSoftDelete_ArchiveFailureAbortsBeforeDelete(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO finance_history").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	archived, err := SoftDelete(db, "payments", []string{"p1", "p2"}, "admin")
	if !errors.Is(err, ErrArchiveFailed) {
		t.Fatalf("expected ErrArchiveFailed, got %v", err)
	}
	if archived != 0 {
		t.Errorf("expected 0 archived, got %d", archived)
	}
	// Ordered expectations: a DELETE exec here would be an unexpected call.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("delete must not run after a failed snapshot: %v", err)
	}
}

// The snapshot insert must complete before the destructive delete.
func TestSoftDelete_SnapshotPrecedesDelete(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO finance_history").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM payments").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	archived, err := SoftDelete(db, "payments", []string{"p1", "p2"}, "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if archived != 2 {
		t.Errorf("expected 2 archived, got %d", archived)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("snapshot and delete did not run in order: %v", err)
	}
}

// Rows that match nothing must not be deleted, and the transaction is
// discarded rather than committed.
func TestSoftDelete_NoMatchingRows(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO finance_history").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := SoftDelete(db, "refunds", []string{"missing"}, "admin")
	if !errors.Is(err, ErrNoRowsToArchive) {
		t.Fatalf("expected ErrNoRowsToArchive, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected statements ran: %v", err)
	}
}

// A failed restore insert keeps the history entry, so restore can be retried.
func TestRestore_InsertFailureKeepsHistoryEntry(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT table_name, row_data FROM finance_history").
		WithArgs("h1").
		WillReturnRows(sqlmock.NewRows([]string{"table_name", "row_data"}).
			AddRow("payments", []byte(`{"id":"p1","amount":500}`)))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnError(errors.New("duplicate key value"))
	mock.ExpectRollback()

	if err := Restore(db, "h1"); err == nil {
		t.Fatal("expected restore to fail when the insert fails")
	}
	// The history delete must not run; rollback preserves the entry.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("history entry was not preserved: %v", err)
	}
}

func TestRestore_UnknownEntry(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT table_name, row_data FROM finance_history").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	if err := Restore(db, "missing"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestErrArchiveFailed_IsDistinguishable(t *testing.T) {
	// Handlers branch on the archive failure to show the "nothing was
	// deleted" message, so wrapping must preserve errors.Is.
	wrapped := fmt.Errorf("%w: connection reset", ErrArchiveFailed)
	if !errors.Is(wrapped, ErrArchiveFailed) {
		t.Fatal("wrapped archive error no longer matches ErrArchiveFailed")
	}
	if errors.Is(wrapped, ErrUnknownTable) {
		t.Fatal("archive error must not match unrelated sentinel errors")
	}
}
