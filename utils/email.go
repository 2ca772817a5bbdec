package utils

import (
	"fmt"
	"log"

	"lms/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEnrollmentEmail notifies a student their purchase completed. Delivery
// is best effort; failures are logged and never surfaced to the webhook.
func SendEnrollmentEmail(toEmail, toName, courseTitle string) {
	if config.AppConfig.SendgridAPIKey == "" {
		return
	}

	from := mail.NewEmail("Course Marketplace", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	subject := "You're enrolled: " + courseTitle

	plain := fmt.Sprintf("Hi %s,\n\nYour enrollment in \"%s\" is confirmed. Happy learning!", toName, courseTitle)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your enrollment in <strong>%s</strong> is confirmed. Happy learning!</p>", toName, courseTitle)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Failed to send enrollment email: %v", err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("Enrollment email rejected: %d %s", resp.StatusCode, resp.Body)
	}
}
