package students

import (
	"database/sql"
	"time"

	"epic-gym-system/app/config"
	"epic-gym-system/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := GetAllStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load students", "details": err.Error()})
	}
	return c.JSON(students)
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load student"})
	}
	return c.JSON(student)
}

// CreateStudentAPI enrolls a student. When a weekly schedule is submitted,
// the student is attached to a training group deduplicated by schedule key.
func CreateStudentAPI(c *fiber.Ctx) error {
	type CreateStudentRequest struct {
		FullName   string                 `json:"full_name"`
		Phone      string                 `json:"phone"`
		PlanMonths int                    `json:"plan_months"`
		StartDate  time.Time              `json:"start_date"`
		Notes      string                 `json:"notes"`
		Schedule   []*models.ScheduleSlot `json:"schedule"`
	}

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.PlanMonths < 1 {
		req.PlanMonths = 1
	}
	if req.StartDate.IsZero() {
		req.StartDate = time.Now()
	}

	for _, slot := range req.Schedule {
		if !ValidateDayOfWeek(slot.Day) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid day of week: " + slot.Day})
		}
		if !ValidateTimeFormat(slot.StartTime) || !ValidateTimeFormat(slot.EndTime) {
			return c.Status(400).JSON(fiber.Map{"error": "Times must be in HH:MM format"})
		}
	}

	student := &models.Student{
		FullName:   req.FullName,
		Phone:      req.Phone,
		PlanMonths: req.PlanMonths,
		StartDate:  req.StartDate,
		ExpiresAt:  SubscriptionExpiry(req.StartDate, req.PlanMonths),
		Status:     string(models.SubscriptionActive),
		Notes:      req.Notes,
	}
	if err := validate.StructExcept(student, "ID", "Group"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if len(req.Schedule) > 0 {
		group, err := GetOrCreateGroup(config.GetDB(), req.Schedule)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve training group"})
		}
		student.GroupID = &group.ID
		student.Group = group
	}

	if err := CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.Status(201).JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	student, err := GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load student"})
	}

	var updates models.Student
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if updates.FullName != "" {
		student.FullName = updates.FullName
	}
	if updates.Phone != "" {
		student.Phone = updates.Phone
	}
	if updates.Notes != "" {
		student.Notes = updates.Notes
	}
	if updates.PlanMonths >= 1 && !updates.StartDate.IsZero() {
		student.PlanMonths = updates.PlanMonths
		student.StartDate = updates.StartDate
		student.ExpiresAt = SubscriptionExpiry(updates.StartDate, updates.PlanMonths)
		student.Status = string(models.SubscriptionActive)
	}
	if err := validate.StructExcept(student, "ID", "Group"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(student)
}

// RenewStudentAPI extends a subscription. A renewal before expiry extends
// from the current expiry date; a lapsed one restarts from today.
func RenewStudentAPI(c *fiber.Ctx) error {
	type RenewRequest struct {
		Months int `json:"months"`
	}

	var req RenewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Months < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Months must be at least 1"})
	}

	student, err := GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load student"})
	}

	student.ExpiresAt = RenewalExpiry(student.ExpiresAt, req.Months, time.Now())
	student.PlanMonths = req.Months
	student.Status = string(models.SubscriptionActive)

	if err := UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to renew subscription"})
	}
	return c.JSON(student)
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := DeactivateStudent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.SendStatus(204)
}

func GetGroupsAPI(c *fiber.Ctx) error {
	groups, err := GetAllGroups(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load groups", "details": err.Error()})
	}
	return c.JSON(groups)
}

func StudentsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("students/index", fiber.Map{
		"Title":       "Students Management",
		"CurrentPage": "students",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"user":        user,
	})
}
