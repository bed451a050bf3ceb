package coaches

import (
	"database/sql"

	"epic-gym-system/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupCoachesRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitCoachesDB(db)

	// Web Routes
	web := app.Group("/coaches")
	web.Use(auth.AuthMiddleware)
	web.Get("/", CoachesPageHandler)

	// API Routes
	api := app.Group("/api/coaches")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetCoachesAPI)
	api.Get("/attendance", GetAttendanceAPI)
	api.Post("/attendance", auth.RoleMiddleware("admin", "reception", "coach"), MarkAttendanceAPI)
	api.Get("/:id", GetCoachAPI)
	api.Get("/:id/attendance", GetCoachMonthAttendanceAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateCoachAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateCoachAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteCoachAPI)
}
