package sessions

import (
	"database/sql"

	"epic-gym-system/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionsRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitSessionsDB(db)

	// Web Routes
	web := app.Group("/sessions")
	web.Use(auth.AuthMiddleware)
	web.Get("/", SessionsPageHandler)

	// API Routes
	api := app.Group("/api/sessions")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetMonthSessionsAPI)
	api.Get("/coach/:coachId", GetCoachSessionsAPI)
	api.Post("/", auth.RoleMiddleware("admin", "reception", "coach"), CreatePTSessionAPI)
}
