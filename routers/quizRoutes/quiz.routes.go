package quizRoutes

import (
	controllers "quizcert/controllers/quiz"
	"quizcert/middleware"
	validators "quizcert/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up all quiz routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quizzes")

	// Catalog and sanitized quiz fetch (the form the taking session consumes)
	quizGroup.Get("/", middleware.JWTMiddleware, controllers.GetAllQuizzes)
	quizGroup.Get("/:id", middleware.JWTMiddleware, validators.GetQuiz(), controllers.GetQuiz)

	// Authoritative answer key, trusted validation paths only
	quizGroup.Get("/:id/answers", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.GetQuiz(), controllers.GetQuizAnswers)
}
