package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)
}

// AuthMiddleware validates the JWT and sets the user on the request
// context. Tokens are accepted from the cookie or a bearer header.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user := &models.User{
		ID:       claims.UserID,
		Email:    claims.Email,
		Name:     claims.Name,
		Role:     models.UserRole(claims.Role),
		IsActive: true,
	}
	c.Locals("user_id", user.ID)
	c.Locals("user", user)

	return c.Next()
}
