package resultRoutes

import (
	controllers "quizcert/controllers/result"
	"quizcert/middleware"
	validators "quizcert/validators/result"

	"github.com/gofiber/fiber/v2"
)

// SetupResultRoutes sets up all result routes
func SetupResultRoutes(app *fiber.App) {
	resultGroup := app.Group("/results")

	// Submission (grading happens server-side)
	resultGroup.Post("/submit", middleware.JWTMiddleware, validators.SubmitResult(), controllers.SubmitResult)

	// History, newest first
	resultGroup.Get("/user", middleware.JWTMiddleware, controllers.GetUserResults)

	// One result, owner only
	resultGroup.Get("/:id", middleware.JWTMiddleware, validators.GetResult(), controllers.GetResult)
}
