package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "lingkunganku_backend/internals/features/users/auth/controller"
	"lingkunganku_backend/internals/middlewares"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"
)

// AuthRoutes mendaftarkan endpoint autentikasi.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/refresh-token", ctl.RefreshToken)

	protected := api.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctl.Logout)
	protected.Post("/register", ctl.Register)
	protected.Post("/change-password", ctl.ChangePassword)
	protected.Get("/me", ctl.Me)
}
