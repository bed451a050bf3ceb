package finance

import (
	"errors"
	"strconv"
	"time"

	"epic-gym-system/app/config"
	"epic-gym-system/app/database"
	"epic-gym-system/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseYearMonth reads year/month query params, defaulting to the current
// calendar month.
func parseYearMonth(c *fiber.Ctx) (int, int, error) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, errors.New("invalid year")
		}
		year = y
	}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, errors.New("invalid month")
		}
		month = m
	}
	return year, month, nil
}

func GetPaymentsAPI(c *fiber.Ctx) error {
	payments, err := database.GetAllPayments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments", "details": err.Error()})
	}
	return c.JSON(payments)
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	var p models.Payment
	if err := c.BodyParser(&p); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if p.Amount < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must not be negative"})
	}
	if !models.ValidPaymentMethod(p.PaymentMethod) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment method"})
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}

	p.CreatedBy = c.Locals("user_id").(string)

	if err := validate.StructExcept(&p, "ID", "Student"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := CreatePayment(config.GetDB(), &p); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}
	return c.Status(201).JSON(p)
}

func GetRefundsAPI(c *fiber.Ctx) error {
	refunds, err := database.GetAllRefunds(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load refunds", "details": err.Error()})
	}
	return c.JSON(refunds)
}

func CreateRefundAPI(c *fiber.Ctx) error {
	var r models.Refund
	if err := c.BodyParser(&r); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if r.Amount < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must not be negative"})
	}
	if r.RefundDate.IsZero() {
		r.RefundDate = time.Now()
	}

	r.CreatedBy = c.Locals("user_id").(string)

	if err := validate.StructExcept(&r, "ID"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := CreateRefund(config.GetDB(), &r); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create refund"})
	}
	return c.Status(201).JSON(r)
}

func GetExpensesAPI(c *fiber.Ctx) error {
	expenses, err := database.GetAllExpenses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load expenses", "details": err.Error()})
	}
	return c.JSON(expenses)
}

func CreateExpenseAPI(c *fiber.Ctx) error {
	var e models.Expense
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if e.Amount < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must not be negative"})
	}
	if e.ExpenseDate.IsZero() {
		e.ExpenseDate = time.Now()
	}

	e.CreatedBy = c.Locals("user_id").(string)

	if err := validate.StructExcept(&e, "ID"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := CreateExpense(config.GetDB(), &e); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create expense"})
	}
	return c.Status(201).JSON(e)
}

// GetSummaryAPI returns the monthly finance overview: revenue, refunds,
// expenses, payroll and derived net profit, recomputed from source rows.
func GetSummaryAPI(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := database.GetMonthlySummary(config.GetDB(), year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute monthly summary", "details": err.Error()})
	}
	return c.JSON(summary)
}

// GetPayrollAPI returns the per-coach payroll breakdown for a month.
func GetPayrollAPI(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := database.GetMonthlyPayroll(config.GetDB(), year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute payroll", "details": err.Error()})
	}
	return c.JSON(report)
}

// DeleteToRecycleBinAPI archives finance rows and deletes the originals.
// The snapshot is written before anything is destroyed; if the snapshot
// fails the caller gets the distinct backup error and no row is touched.
func DeleteToRecycleBinAPI(c *fiber.Ctx) error {
	type DeleteRequest struct {
		Table string   `json:"table"`
		IDs   []string `json:"ids"`
	}

	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.IDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No ids supplied"})
	}

	actor := c.Locals("user_id").(string)

	archived, err := database.SoftDelete(config.GetDB(), req.Table, req.IDs, actor)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrUnknownTable):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrNoRowsToArchive):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrArchiveFailed):
			// Keep this message distinct: the user must know nothing was
			// deleted, so they do not retry a destructive action blindly.
			return c.Status(500).JSON(fiber.Map{"error": database.ErrArchiveFailed.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete records", "details": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"archived": archived})
}

func GetRecycleBinAPI(c *fiber.Ctx) error {
	tableFilter := c.Query("table")
	if tableFilter != "" && !database.RecycleBinTableAllowed(tableFilter) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown table filter"})
	}

	entries, err := database.GetRecycleBinEntries(config.GetDB(), tableFilter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load recycle bin", "details": err.Error()})
	}
	return c.JSON(entries)
}

// RestoreAPI re-inserts an archived row into its source table. On failure
// the archive entry is untouched, so the operation is safe to retry.
func RestoreAPI(c *fiber.Ctx) error {
	historyID := c.Params("id")

	err := database.Restore(config.GetDB(), historyID)
	if err != nil {
		if errors.Is(err, database.ErrEntryNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to restore record", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Record restored"})
}

// EmptyRecycleBinAPI purges archived entries permanently. The confirm=true
// parameter is required because purged rows are unrecoverable.
func EmptyRecycleBinAPI(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(400).JSON(fiber.Map{"error": "Emptying the recycle bin is permanent; pass confirm=true"})
	}

	tableFilter := c.Query("table")
	if tableFilter != "" && !database.RecycleBinTableAllowed(tableFilter) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown table filter"})
	}

	purged, err := database.PurgeRecycleBin(config.GetDB(), tableFilter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to empty recycle bin", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"purged": purged})
}
