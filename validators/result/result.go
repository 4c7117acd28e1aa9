package resultValidator

import (
	"strconv"

	controllers "quizcert/controllers/result"
	"quizcert/middleware"

	"github.com/gofiber/fiber/v2"
)

func SubmitResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.SubmittedResult)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate QuizID
		if reqData.QuizID < 1 {
			errors["quizId"] = "Quiz ID is required!"
		}

		// Validate Answers. Shape anomalies inside the slice (short answer
		// sets, out-of-range indices) are graded as wrong answers later, not
		// rejected here.
		if reqData.Answers == nil {
			errors["answers"] = "Answers are required!"
		}

		// Validate TimeSpent
		if reqData.TimeSpent < 0 {
			errors["timeSpent"] = "Time spent must not be negative!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

func GetResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		// Validate result ID
		resultID, err := strconv.Atoi(c.Params("id"))
		if err != nil || resultID < 1 {
			errors["id"] = "Result ID must be a positive integer!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("resultID", resultID)
		return c.Next()
	}
}

func GenerateCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		// Validate result ID
		resultID, err := strconv.Atoi(c.Params("resultId"))
		if err != nil || resultID < 1 {
			errors["resultId"] = "Result ID must be a positive integer!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("resultID", resultID)
		return c.Next()
	}
}
