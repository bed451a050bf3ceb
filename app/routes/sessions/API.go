package sessions

import (
	"time"

	"epic-gym-system/app/config"
	"epic-gym-system/app/database"
	"epic-gym-system/app/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePTSessionAPI marks a personal-training session as delivered.
func CreatePTSessionAPI(c *fiber.Ctx) error {
	var s models.PTSession
	if err := c.BodyParser(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if s.CoachID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "coach_id is required"})
	}
	if s.StudentID == nil && s.StudentName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "A student reference or name is required"})
	}
	if s.SessionsCount < 1 {
		s.SessionsCount = 1
	}
	if s.Date.IsZero() {
		s.Date = time.Now()
	}

	s.CreatedBy = c.Locals("user_id").(string)

	if err := CreatePTSession(config.GetDB(), &s); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record PT session"})
	}
	return c.Status(201).JSON(s)
}

// GetMonthSessionsAPI lists all PT sessions for a calendar month.
func GetMonthSessionsAPI(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "invalid month"})
	}

	result, err := database.GetPTSessionsForMonth(config.GetDB(), year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load PT sessions", "details": err.Error()})
	}
	return c.JSON(result)
}

// GetCoachSessionsAPI lists one coach's PT sessions for a calendar month.
func GetCoachSessionsAPI(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "invalid month"})
	}

	start, end := database.MonthRange(year, month)
	result, err := GetPTSessionsByCoach(config.GetDB(), c.Params("coachId"), start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load PT sessions", "details": err.Error()})
	}
	return c.JSON(result)
}

func SessionsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("sessions/index", fiber.Map{
		"Title":       "PT Sessions",
		"CurrentPage": "sessions",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"user":        user,
	})
}
