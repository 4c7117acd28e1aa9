package controllers

import (
	"quizcert/database"
	"quizcert/middleware"
	"quizcert/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// quizSummary is the list view of a quiz, without question bodies
type quizSummary struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	PassingScore   int    `json:"passingScore"`
	Duration       int    `json:"duration"`
	TotalQuestions int    `json:"totalQuestions"`
}

// sanitizedQuestion is a question as served to quiz takers. It deliberately
// has no field for the correct-answer index.
type sanitizedQuestion struct {
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
}

// GetAllQuizzes returns the quiz catalog without question bodies
func GetAllQuizzes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var quizzes []models.Quiz
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("id asc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	summaries := make([]quizSummary, len(quizzes))
	for i, quiz := range quizzes {
		summaries[i] = quizSummary{
			ID:             quiz.ID,
			Title:          quiz.Title,
			Description:    quiz.Description,
			PassingScore:   quiz.PassingScore,
			Duration:       quiz.Duration,
			TotalQuestions: len(quiz.Questions),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", fiber.Map{
		"quizzes": summaries,
		"total":   len(summaries),
	})
}

// GetQuiz returns one quiz with its questions stripped of correct-answer
// indices. This is the form the taking session consumes.
func GetQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}

	questions := make([]sanitizedQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = sanitizedQuestion{
			QuestionText: q.QuestionText,
			Options:      q.Options,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"id":           quiz.ID,
		"title":        quiz.Title,
		"description":  quiz.Description,
		"passingScore": quiz.PassingScore,
		"duration":     quiz.Duration,
		"questions":    questions,
		"createdAt":    quiz.CreatedAt,
		"updatedAt":    quiz.UpdatedAt,
	})
}

// GetQuizAnswers returns the authoritative answer key for a quiz. Routed
// behind the ADMIN role: the taking UI must never see this.
func GetQuizAnswers(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}

	correctAnswers := make([]int, len(quiz.Questions))
	for i, q := range quiz.Questions {
		correctAnswers[i] = q.CorrectAnswer
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer key fetched successfully!", fiber.Map{
		"quizId":         quiz.ID,
		"title":          quiz.Title,
		"passingScore":   quiz.PassingScore,
		"totalQuestions": len(quiz.Questions),
		"correctAnswers": correctAnswers,
	})
}
