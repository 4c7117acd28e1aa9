package certificateRoutes

import (
	controllers "quizcert/controllers/certificate"
	"quizcert/middleware"
	validators "quizcert/validators/result"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up all certificate routes
func SetupCertificateRoutes(app *fiber.App) {
	certificateGroup := app.Group("/certificates")

	// Certificate download, passed results only
	certificateGroup.Get("/generate/:resultId", middleware.JWTMiddleware, validators.GenerateCertificate(), controllers.GenerateCertificate)
}
