package database

import (
	"testing"
	"time"

	"epic-gym-system/app/models"
)

func paymentOn(date time.Time, amount float64) *models.Payment {
	return &models.Payment{Amount: amount, PaymentDate: date}
}

func TestFilterByMonth_CalendarBoundaries(t *testing.T) {
	march1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	march31 := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	april1 := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	feb28 := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	march2024 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	payments := []*models.Payment{
		paymentOn(march1, 1000),
		paymentOn(march31, 2000),
		paymentOn(april1, 500),
		paymentOn(feb28, 300),
		paymentOn(march2024, 700), // same month, wrong year
	}

	got := FilterByMonth(payments, 2025, 3, func(p *models.Payment) time.Time { return p.PaymentDate })
	if len(got) != 2 {
		t.Fatalf("expected 2 March 2025 payments, got %d", len(got))
	}

	// First and last day of the month are both in.
	revenue := SumAmounts(got, func(p *models.Payment) float64 { return p.Amount })
	if revenue != 3000 {
		t.Errorf("March revenue: expected 3000, got %v", revenue)
	}
}

func TestFilterByMonth_EmptyInput(t *testing.T) {
	got := FilterByMonth([]*models.Payment{}, 2025, 3, func(p *models.Payment) time.Time { return p.PaymentDate })
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d records", len(got))
	}
}

func TestSumAmounts(t *testing.T) {
	cases := []struct {
		name     string
		amounts  []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []float64{42.5}, 42.5},
		{"several", []float64{100, 200, 50.25}, 350.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			refunds := make([]*models.Refund, len(tc.amounts))
			for i, a := range tc.amounts {
				refunds[i] = &models.Refund{Amount: a}
			}
			got := SumAmounts(refunds, func(r *models.Refund) float64 { return r.Amount })
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestComputeNetProfit(t *testing.T) {
	cases := []struct {
		name                            string
		revenue, refunds, expenses, pay float64
		expected                        float64
	}{
		{"profitable month", 10000, 500, 1500, 4000, 4000},
		{"deficit month", 2000, 500, 1500, 4000, -4000},
		{"all zero", 0, 0, 0, 0, 0},
		{"payroll only", 0, 0, 0, 3500, -3500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeNetProfit(tc.revenue, tc.refunds, tc.expenses, tc.pay)
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestComputeNetProfit_Identity(t *testing.T) {
	// net == rev - ref - exp - payroll for arbitrary inputs, no clamping
	inputs := [][4]float64{
		{1, 2, 3, 4},
		{-100, 50, 25, 10},
		{0.1, 0.2, 0.3, 0.4},
	}
	for _, in := range inputs {
		got := ComputeNetProfit(in[0], in[1], in[2], in[3])
		want := in[0] - in[1] - in[2] - in[3]
		if got != want {
			t.Errorf("ComputeNetProfit(%v): expected %v, got %v", in, want, got)
		}
	}
}
