package database

import (
	"testing"
	"time"

	"epic-gym-system/app/models"
)

func sessionFor(coachID string, count int) *models.PTSession {
	return &models.PTSession{
		ID:            "s-" + coachID,
		CoachID:       coachID,
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		SessionsCount: count,
	}
}

func TestComputeMonthlyPayroll_BreakdownPerCoach(t *testing.T) {
	// A coach on 3000 base with 5 PT sessions at rate 100 earns 3500.
	coaches := []*models.Coach{
		{ID: "c1", FullName: "Dana", Salary: 3000, PTRate: 100},
	}
	sessions := []*models.PTSession{
		sessionFor("c1", 2),
		sessionFor("c1", 2),
		sessionFor("c1", 1),
	}

	perCoach, total := ComputeMonthlyPayroll(coaches, sessions)
	if len(perCoach) != 1 {
		t.Fatalf("expected 1 payroll entry, got %d", len(perCoach))
	}

	entry := perCoach[0]
	if entry.BaseSalary != 3000 {
		t.Errorf("base salary: expected 3000, got %v", entry.BaseSalary)
	}
	if entry.SessionCount != 5 {
		t.Errorf("session count: expected 5, got %d", entry.SessionCount)
	}
	if entry.PTEarnings != 500 {
		t.Errorf("pt earnings: expected 500, got %v", entry.PTEarnings)
	}
	if entry.Total != 3500 {
		t.Errorf("total: expected 3500, got %v", entry.Total)
	}
	if total != 3500 {
		t.Errorf("total payroll: expected 3500, got %v", total)
	}
}

func TestComputeMonthlyPayroll_IncludesZeroSessionCoaches(t *testing.T) {
	// Every coach in the roster appears, even with no PT work that month.
	coaches := []*models.Coach{
		{ID: "c1", FullName: "Dana", Salary: 3000, PTRate: 100},
		{ID: "c2", FullName: "Omar", Salary: 2500, PTRate: 80},
	}
	sessions := []*models.PTSession{sessionFor("c1", 3)}

	perCoach, _ := ComputeMonthlyPayroll(coaches, sessions)
	if len(perCoach) != 2 {
		t.Fatalf("expected 2 payroll entries, got %d", len(perCoach))
	}

	var omar *models.CoachPayroll
	for _, e := range perCoach {
		if e.CoachID == "c2" {
			omar = e
		}
	}
	if omar == nil {
		t.Fatal("coach with zero sessions missing from payroll")
	}
	if omar.SessionCount != 0 || omar.PTEarnings != 0 {
		t.Errorf("zero-session coach: expected no PT earnings, got count=%d earnings=%v",
			omar.SessionCount, omar.PTEarnings)
	}
	if omar.Total != omar.BaseSalary {
		t.Errorf("zero-session coach: total %v should equal salary %v", omar.Total, omar.BaseSalary)
	}
}

func TestComputeMonthlyPayroll_TotalIsSumOfEntries(t *testing.T) {
	coaches := []*models.Coach{
		{ID: "c1", FullName: "Dana", Salary: 3000, PTRate: 100},
		{ID: "c2", FullName: "Omar", Salary: 2500, PTRate: 80},
		{ID: "c3", FullName: "Lena", Salary: 0, PTRate: 0},
	}
	sessions := []*models.PTSession{
		sessionFor("c1", 5),
		sessionFor("c2", 2),
		sessionFor("c3", 7),
	}

	perCoach, total := ComputeMonthlyPayroll(coaches, sessions)

	sum := 0.0
	for _, e := range perCoach {
		sum += e.Total
	}
	if total != sum {
		t.Errorf("total payroll %v does not equal sum of entries %v", total, sum)
	}
}

func TestComputeMonthlyPayroll_MissingNumbersDefaultToZero(t *testing.T) {
	// Unset salary and rate are zero values; the aggregator never errors.
	coaches := []*models.Coach{{ID: "c1", FullName: "New Hire"}}
	perCoach, total := ComputeMonthlyPayroll(coaches, []*models.PTSession{sessionFor("c1", 4)})

	if perCoach[0].Total != 0 {
		t.Errorf("expected zero total for coach without salary or rate, got %v", perCoach[0].Total)
	}
	if total != 0 {
		t.Errorf("expected zero total payroll, got %v", total)
	}
}

func TestComputeMonthlyPayroll_EmptyInputs(t *testing.T) {
	perCoach, total := ComputeMonthlyPayroll(nil, nil)
	if len(perCoach) != 0 {
		t.Errorf("expected no entries, got %d", len(perCoach))
	}
	if total != 0 {
		t.Errorf("expected zero total, got %v", total)
	}
}

func TestMonthRange(t *testing.T) {
	cases := []struct {
		year, month int
		wantStart   string
		wantEnd     string
	}{
		{2025, 3, "2025-03-01", "2025-04-01"},
		{2025, 12, "2025-12-01", "2026-01-01"},
		{2024, 2, "2024-02-01", "2024-03-01"}, // leap February
	}

	for _, tc := range cases {
		start, end := MonthRange(tc.year, tc.month)
		if got := start.Format("2006-01-02"); got != tc.wantStart {
			t.Errorf("MonthRange(%d, %d) start: expected %s, got %s", tc.year, tc.month, tc.wantStart, got)
		}
		if got := end.Format("2006-01-02"); got != tc.wantEnd {
			t.Errorf("MonthRange(%d, %d) end: expected %s, got %s", tc.year, tc.month, tc.wantEnd, got)
		}
	}
}
