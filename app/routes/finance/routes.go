package finance

import (
	"database/sql"

	"epic-gym-system/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFinanceRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitFinanceDB(db)

	// Web Routes
	web := app.Group("/finance")
	web.Use(auth.AuthMiddleware)
	web.Get("/", FinancePageHandler)
	web.Get("/payroll", PayrollPageHandler)
	web.Get("/recycle-bin", auth.RoleMiddleware("admin"), RecycleBinPageHandler)

	// API Routes
	api := app.Group("/api/finance")
	api.Use(auth.AuthMiddleware)

	api.Get("/payments", GetPaymentsAPI)
	api.Post("/payments", auth.RoleMiddleware("admin", "reception"), CreatePaymentAPI)

	api.Get("/refunds", GetRefundsAPI)
	api.Post("/refunds", auth.RoleMiddleware("admin", "reception"), CreateRefundAPI)

	api.Get("/expenses", GetExpensesAPI)
	api.Post("/expenses", auth.RoleMiddleware("admin", "reception"), CreateExpenseAPI)

	api.Get("/summary", GetSummaryAPI)
	api.Get("/payroll", GetPayrollAPI)

	// Destructive finance operations are admin-only
	bin := app.Group("/api/finance/recycle-bin")
	bin.Use(auth.AuthMiddleware)
	bin.Use(auth.RoleMiddleware("admin"))
	bin.Get("/", GetRecycleBinAPI)
	bin.Post("/delete", DeleteToRecycleBinAPI)
	bin.Post("/:id/restore", RestoreAPI)
	bin.Delete("/", EmptyRecycleBinAPI)
}
