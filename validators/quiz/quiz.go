package quizValidator

import (
	"strconv"

	"quizcert/middleware"

	"github.com/gofiber/fiber/v2"
)

func GetQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		// Validate quiz ID
		quizID, err := strconv.Atoi(c.Params("id"))
		if err != nil || quizID < 1 {
			errors["id"] = "Quiz ID must be a positive integer!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", quizID)
		return c.Next()
	}
}
