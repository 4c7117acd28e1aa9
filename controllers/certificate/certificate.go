package controllers

import (
	"fmt"
	"log"
	"strings"

	"quizcert/certificate"
	"quizcert/config"
	"quizcert/database"
	"quizcert/middleware"
	"quizcert/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateCertificate renders the certificate for a passed result owned by
// the caller and sends it as a PNG download
func GenerateCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	resultID := c.Locals("resultID").(int)

	var result models.Result
	if err := database.Database.Db.Where("id = ? AND user_id = ?", resultID, userID).First(&result).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Result not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch result!", nil)
	}

	if !certificate.Eligible(&result, userID) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate can only be generated for passed quizzes!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ?", result.QuizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}

	renderer := certificate.NewRenderer(config.AppConfig.CertFont, config.AppConfig.CertFontSize)
	document, err := renderer.Render(certificate.Data{
		RecipientName:  user.Name,
		QuizTitle:      quiz.Title,
		Score:          result.Score,
		CorrectAnswers: result.CorrectAnswers,
		TotalQuestions: result.TotalQuestions,
		IssuedAt:       result.CreatedAt,
		SerialNumber:   uuid.NewString(),
	})
	if err != nil {
		log.Printf("[CERTIFICATE] Failed to render certificate for result %d: %v", result.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error generating certificate!", nil)
	}

	filename := fmt.Sprintf("Certificate_%s_%s.png",
		sanitizeFilename(user.Name), sanitizeFilename(quiz.Title))

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))

	return c.Status(fiber.StatusOK).Send(document)
}

func sanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", "\"", "")
	return replacer.Replace(s)
}
