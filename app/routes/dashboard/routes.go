package dashboard

import (
	"epic-gym-system/app/config"
	"epic-gym-system/app/database"
	"epic-gym-system/app/models"
	"epic-gym-system/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	web := app.Group("/dashboard")
	web.Use(auth.AuthMiddleware)
	web.Get("/", DashboardPageHandler)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetStatsAPI)
}

func DashboardPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - Epic Gym",
		"CurrentPage": "dashboard",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"user":        user,
	})
}

func GetStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard stats", "details": err.Error()})
	}
	return c.JSON(stats)
}
