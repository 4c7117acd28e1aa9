package controllers

import (
	"encoding/json"
	"log"

	"quizcert/database"
	"quizcert/grading"
	"quizcert/middleware"
	"quizcert/models"
	"quizcert/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmittedResult is the validated submission payload. Any score or pass
// flag a client might send alongside is ignored; both are recomputed here.
type SubmittedResult struct {
	QuizID    uint  `json:"quizId"`
	Answers   []int `json:"answers"`
	TimeSpent int   `json:"timeSpent"`
}

// quizRef is the denormalized quiz reference attached to result views
type quizRef struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	PassingScore int    `json:"passingScore"`
}

// SubmitResult grades one submission against the stored answer key and
// persists a new Result row
func SubmitResult(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	submission := c.Locals("validatedSubmission").(*SubmittedResult)

	// Get quiz with the authoritative answer key
	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", submission.QuizID, false).First(&quiz).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}

	correct := make([]int, len(quiz.Questions))
	for i, q := range quiz.Questions {
		correct[i] = q.CorrectAnswer
	}

	correctCount, score := grading.Grade(submission.Answers, correct)
	passed := grading.Passed(score, quiz.PassingScore)

	answersJSON, err := json.Marshal(submission.Answers)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
	}

	result := models.Result{
		UserID:         userID,
		QuizID:         quiz.ID,
		Answers:        datatypes.JSON(answersJSON),
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		CorrectAnswers: correctCount,
		Passed:         passed,
		TimeSpent:      submission.TimeSpent,
	}

	if err := database.Database.Db.Create(&result).Error; err != nil {
		log.Printf("[GRADING] Failed to persist result for user %d quiz %d: %v", userID, quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save result!", nil)
	}

	if passed {
		// Best effort; a failed email never fails the submission
		go utils.SendPassNotification(user.Email, user.Name, quiz.Title, score)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Result submitted successfully!", fiber.Map{
		"result": fiber.Map{
			"id":             result.ID,
			"score":          result.Score,
			"correctAnswers": result.CorrectAnswers,
			"totalQuestions": result.TotalQuestions,
			"passed":         result.Passed,
			"timeSpent":      result.TimeSpent,
			"date":           result.CreatedAt,
			"quiz": quizRef{
				ID:           quiz.ID,
				Title:        quiz.Title,
				PassingScore: quiz.PassingScore,
			},
		},
	})
}

// GetUserResults returns the caller's graded attempts, newest first
func GetUserResults(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var results []models.Result
	if err := database.Database.Db.Where("user_id = ?", userID).Order("created_at desc").Find(&results).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	type resultWithQuiz struct {
		models.Result
		Quiz quizRef `json:"quiz"`
	}

	list := make([]resultWithQuiz, len(results))
	for i, res := range results {
		var quiz models.Quiz
		database.Database.Db.Where("id = ?", res.QuizID).First(&quiz)
		list[i] = resultWithQuiz{
			Result: res,
			Quiz: quizRef{
				ID:           quiz.ID,
				Title:        quiz.Title,
				Description:  quiz.Description,
				PassingScore: quiz.PassingScore,
			},
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully!", fiber.Map{
		"results": list,
		"total":   len(list),
	})
}

// GetResult returns one result, only if it belongs to the caller
func GetResult(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	resultID := c.Locals("resultID").(int)

	// Ownership is part of the lookup: a foreign result is indistinguishable
	// from a missing one.
	var result models.Result
	if err := database.Database.Db.Where("id = ? AND user_id = ?", resultID, userID).First(&result).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Result not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch result!", nil)
	}

	var quiz models.Quiz
	database.Database.Db.Where("id = ?", result.QuizID).First(&quiz)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Result fetched successfully!", fiber.Map{
		"result": result,
		"quiz": quizRef{
			ID:           quiz.ID,
			Title:        quiz.Title,
			Description:  quiz.Description,
			PassingScore: quiz.PassingScore,
		},
	})
}
