package students

import (
	"database/sql"

	"epic-gym-system/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitStudentsDB(db)

	// Web Routes
	web := app.Group("/students")
	web.Use(auth.AuthMiddleware)
	web.Get("/", StudentsPageHandler)

	// API Routes
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentAPI)
	api.Post("/", auth.RoleMiddleware("admin", "reception"), CreateStudentAPI)
	api.Put("/:id", auth.RoleMiddleware("admin", "reception"), UpdateStudentAPI)
	api.Post("/:id/renew", auth.RoleMiddleware("admin", "reception"), RenewStudentAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteStudentAPI)

	// Training groups
	groups := app.Group("/api/groups")
	groups.Use(auth.AuthMiddleware)
	groups.Get("/", GetGroupsAPI)
}
