package auth

import (
	"strings"

	"epic-gym-system/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Already logged in, skip the form
	if _, err := ValidateJWT(tokenFromRequest(c)); err == nil {
		return c.Redirect("/dashboard")
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Epic Gym",
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	userRoles := c.Locals("user_roles").([]*models.Role)

	roleName := ""
	if len(userRoles) > 0 {
		roleName = userRoles[0].Name
	}

	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - Epic Gym",
		"CurrentPage": "profile",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"Role":        roleName,
	})
}

// tokenFromRequest reads the JWT from the session cookie, falling back to a
// Bearer header for API clients that do not carry cookies.
func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies("jwt_token"); token != "" {
		return token
	}
	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func unauthorized(c *fiber.Ctx, message string) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(401).JSON(fiber.Map{"error": message})
	}
	return c.Redirect("/auth/login")
}

// AuthMiddleware validates the JWT and sets the user context used by every
// protected handler, including the created_by stamping in finance.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return unauthorized(c, "No token found")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  true,
	}

	roles := make([]*models.Role, len(claims.Roles))
	for i, roleName := range claims.Roles {
		roles[i] = &models.Role{Name: roleName}
	}
	user.Roles = roles

	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user_roles", roles)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware restricts a route to the named roles. Admins always pass:
// the recycle bin and payroll are admin surfaces anyway, and reception/coach
// restrictions exist to limit the front desk, not the owner.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(allowedRoles)+1)
	allowed["admin"] = true
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(c *fiber.Ctx) error {
		userRoles := c.Locals("user_roles").([]*models.Role)

		for _, userRole := range userRoles {
			if allowed[userRole.Name] {
				return c.Next()
			}
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - Epic Gym",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
			"user":         c.Locals("user"),
		})
	}
}
