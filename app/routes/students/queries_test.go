package students

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetAllGroups_IncludesMemberCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock database: %v", err)
	}
	defer db.Close()

	now := time.Now()
	slots := []byte(`[{"day":"monday","start_time":"18:00","end_time":"19:00"}]`)
	mock.ExpectQuery("SELECT (.+) FROM training_groups g LEFT JOIN students s").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "schedule_key", "slots", "created_at", "updated_at", "member_count",
		}).
			AddRow("g1", "Mon 18:00-19:00", "monday:18:00:19:00", slots, now, now, 4).
			AddRow("g2", "Wed 07:00-08:00", "wednesday:07:00:08:00", slots, now, now, 0))

	groups, err := GetAllGroups(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].MemberCount != 4 {
		t.Errorf("expected member count 4, got %d", groups[0].MemberCount)
	}
	if groups[1].MemberCount != 0 {
		t.Errorf("expected member count 0 for empty group, got %d", groups[1].MemberCount)
	}
	if len(groups[0].Slots) != 1 || groups[0].Slots[0].Day != "monday" {
		t.Errorf("slots were not decoded: %+v", groups[0].Slots)
	}
}
