package coaches

import (
	"database/sql"
	"time"

	"epic-gym-system/app/config"
	"epic-gym-system/app/database"
	"epic-gym-system/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetCoachesAPI(c *fiber.Ctx) error {
	coaches, err := database.GetActiveCoaches(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load coaches", "details": err.Error()})
	}
	return c.JSON(coaches)
}

func GetCoachAPI(c *fiber.Ctx) error {
	coach, err := GetCoachByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Coach not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load coach"})
	}
	return c.JSON(coach)
}

func CreateCoachAPI(c *fiber.Ctx) error {
	var coach models.Coach
	if err := c.BodyParser(&coach); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if coach.FullName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Full name is required"})
	}
	if err := validate.StructExcept(&coach, "ID"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := CreateCoach(config.GetDB(), &coach); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create coach"})
	}
	return c.Status(201).JSON(coach)
}

func UpdateCoachAPI(c *fiber.Ctx) error {
	coach, err := GetCoachByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Coach not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load coach"})
	}

	// Pointer fields distinguish "not sent" from an explicit zero, so a
	// partial update never wipes the pay fields feeding payroll.
	var updates struct {
		FullName *string  `json:"full_name"`
		Role     *string  `json:"role"`
		Phone    *string  `json:"phone"`
		Salary   *float64 `json:"salary"`
		PTRate   *float64 `json:"pt_rate"`
	}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if updates.FullName != nil && *updates.FullName != "" {
		coach.FullName = *updates.FullName
	}
	if updates.Role != nil {
		coach.Role = *updates.Role
	}
	if updates.Phone != nil {
		coach.Phone = *updates.Phone
	}
	if updates.Salary != nil {
		if *updates.Salary < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Salary must not be negative"})
		}
		coach.Salary = *updates.Salary
	}
	if updates.PTRate != nil {
		if *updates.PTRate < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "PT rate must not be negative"})
		}
		coach.PTRate = *updates.PTRate
	}

	if err := UpdateCoach(config.GetDB(), coach); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update coach"})
	}
	return c.JSON(coach)
}

func DeleteCoachAPI(c *fiber.Ctx) error {
	if err := DeactivateCoach(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete coach"})
	}
	return c.SendStatus(204)
}

// MarkAttendanceAPI records a coach's presence for a day. Re-submitting the
// same day updates the record.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	var a models.CoachAttendance
	if err := c.BodyParser(&a); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if a.CoachID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "coach_id is required"})
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	switch a.Status {
	case models.Present, models.Absent, models.Late, models.Excused:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid attendance status"})
	}

	if err := UpsertAttendance(config.GetDB(), &a); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}
	return c.JSON(fiber.Map{"message": "Attendance saved"})
}

// GetAttendanceAPI lists attendance for a day (default today).
func GetAttendanceAPI(c *fiber.Ctx) error {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}
		date = parsed
	}

	records, err := GetAttendanceByDate(config.GetDB(), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load attendance", "details": err.Error()})
	}
	return c.JSON(records)
}

// GetCoachMonthAttendanceAPI lists one coach's attendance for a calendar
// month (default: the current one).
func GetCoachMonthAttendanceAPI(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "invalid month"})
	}

	start, end := database.MonthRange(year, month)
	records, err := GetAttendanceForMonth(config.GetDB(), c.Params("id"), start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load attendance", "details": err.Error()})
	}
	return c.JSON(records)
}

func CoachesPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("coaches/index", fiber.Map{
		"Title":       "Coaches Management",
		"CurrentPage": "coaches",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"user":        user,
	})
}
