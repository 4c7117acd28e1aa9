package main

import (
	"log"
	"time"

	"quizcert/config"
	"quizcert/database"
	certificateRoutes "quizcert/routers/certificateRoutes"
	quizRoutes "quizcert/routers/quizRoutes"
	resultRoutes "quizcert/routers/resultRoutes"
	"quizcert/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Server is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	quizRoutes.SetupQuizRoutes(app)
	resultRoutes.SetupResultRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)

	utils.InitializeDigestScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
