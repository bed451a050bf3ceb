package finance

import (
	"epic-gym-system/app/models"

	"github.com/gofiber/fiber/v2"
)

func FinancePageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("finance/index", fiber.Map{
		"Title":       "Finance Management",
		"CurrentPage": "finance",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"user":        user,
	})
}

func RecycleBinPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("finance/recycle-bin", fiber.Map{
		"Title":       "Recycle Bin",
		"CurrentPage": "recycle-bin",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"user":        user,
	})
}

func PayrollPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("finance/payroll", fiber.Map{
		"Title":       "Monthly Payroll",
		"CurrentPage": "payroll",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"user":        user,
	})
}
