package utils

import (
	"fmt"
	"log"

	"quizcert/config"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendPassNotification emails a user after a passed submission. Callers treat
// this as best effort; grading never depends on it.
func SendPassNotification(toEmail, name, quizTitle string, score int) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("[EMAIL] SendGrid disabled, skipping pass notification for %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("You passed %s!", quizTitle)
	htmlBody := getEmailTemplate(name, quizTitle, score)

	from := mail.NewEmail("Micro-Certification Platform", config.AppConfig.EmailSender)
	to := mail.NewEmail(name, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending pass notification to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid rejected pass notification for %s, code: %d", toEmail, response.StatusCode)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	log.Printf("[EMAIL] Pass notification sent to %s", toEmail)
	return nil
}

// HTML wrapper matching the certificate look
func getEmailTemplate(name, quizTitle string, score int) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #3B82F6; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F2937; line-height: 1.6; }
			.score { font-size: 24px; color: #059669; font-weight: bold; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>Congratulations!</h1></div>
			<div class="content">
				<p>Hi %s,</p>
				<p>You passed <strong>%s</strong> with a score of <span class="score">%d%%</span>.</p>
				<p>Your certificate is ready — download it from your quiz history.</p>
			</div>
			<div class="footer">Micro-Certification Platform</div>
		</div>
	</body>
	</html>
	`, name, quizTitle, score)
}
