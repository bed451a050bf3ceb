package students

import (
	"testing"
	"time"

	"epic-gym-system/app/models"
)

func slot(day, start, end string) *models.ScheduleSlot {
	return &models.ScheduleSlot{Day: day, StartTime: start, EndTime: end}
}

func TestBuildScheduleKey_OrderIndependent(t *testing.T) {
	a := BuildScheduleKey([]*models.ScheduleSlot{
		slot("monday", "18:00", "19:00"),
		slot("wednesday", "18:00", "19:00"),
	})
	b := BuildScheduleKey([]*models.ScheduleSlot{
		slot("wednesday", "18:00", "19:00"),
		slot("monday", "18:00", "19:00"),
	})
	if a != b {
		t.Errorf("same slots in different order produced different keys: %q vs %q", a, b)
	}
}

func TestBuildScheduleKey_NormalizesCaseAndSpace(t *testing.T) {
	a := BuildScheduleKey([]*models.ScheduleSlot{slot("Monday ", "18:00", "19:00")})
	b := BuildScheduleKey([]*models.ScheduleSlot{slot("monday", "18:00", "19:00")})
	if a != b {
		t.Errorf("normalization failed: %q vs %q", a, b)
	}
}

func TestBuildScheduleKey_DifferentSchedulesDiffer(t *testing.T) {
	a := BuildScheduleKey([]*models.ScheduleSlot{slot("monday", "18:00", "19:00")})
	b := BuildScheduleKey([]*models.ScheduleSlot{slot("monday", "19:00", "20:00")})
	if a == b {
		t.Error("different time windows must produce different keys")
	}
}

func TestSubscriptionExpiry(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		months   int
		expected string
	}{
		{1, "2025-02-15"},
		{3, "2025-04-15"},
		{12, "2026-01-15"},
		{0, "2025-02-15"}, // clamps to a 1-month minimum
	}

	for _, tc := range cases {
		got := SubscriptionExpiry(start, tc.months)
		if got.Format("2006-01-02") != tc.expected {
			t.Errorf("SubscriptionExpiry(%d months): expected %s, got %s",
				tc.months, tc.expected, got.Format("2006-01-02"))
		}
	}
}

func TestRenewalExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Renewing before expiry extends from the current expiry date.
	future := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	got := RenewalExpiry(future, 1, now)
	if got.Format("2006-01-02") != "2025-07-20" {
		t.Errorf("early renewal: expected 2025-07-20, got %s", got.Format("2006-01-02"))
	}

	// Renewing a lapsed subscription restarts from now.
	past := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	got = RenewalExpiry(past, 2, now)
	if got.Format("2006-01-02") != "2025-08-01" {
		t.Errorf("lapsed renewal: expected 2025-08-01, got %s", got.Format("2006-01-02"))
	}
}

func TestValidateTimeFormat(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"18:00", true},
		{"09:30", true},
		{"00:00", true},
		{"23:59", true},
		{"9:30", false},
		{"18:0", false},
		{"1800", false},
		{"ab:cd", false},
		{"24:00", false},
		{"12:60", false},
		{"-1:00", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidateTimeFormat(tc.in); got != tc.valid {
			t.Errorf("ValidateTimeFormat(%q): expected %v, got %v", tc.in, tc.valid, got)
		}
	}
}

func TestValidateDayOfWeek(t *testing.T) {
	if !ValidateDayOfWeek("Monday") {
		t.Error("case-insensitive day should validate")
	}
	if ValidateDayOfWeek("someday") {
		t.Error("invalid day should not validate")
	}
}

func TestGroupNameFromSlots(t *testing.T) {
	name := GroupNameFromSlots([]*models.ScheduleSlot{
		slot("wednesday", "18:00", "19:00"),
		slot("monday", "18:00", "19:00"),
	})
	if name != "Mon 18:00-19:00, Wed 18:00-19:00" {
		t.Errorf("unexpected group name: %q", name)
	}
}
