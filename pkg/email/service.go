package email

import (
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service.
// If sendGridAPIKey is provided, emails will be sent via SendGrid.
// Otherwise, emails will be logged to console (development mode).
func NewService(fromEmail, fromName, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendEmail sends an email with HTML and plain-text bodies
func (s *Service) SendEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	}
	return s.logEmailToConsole(toEmail, subject, plainTextBody)
}

// sendViaSendGrid sends an email through the SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}

	log.Printf("📧 Email sent to %s: %s", toEmail, subject)
	return nil
}

// logEmailToConsole logs the email instead of sending it (development mode)
func (s *Service) logEmailToConsole(toEmail, subject, plainTextBody string) error {
	log.Printf("📧 [DEV EMAIL] To: %s | Subject: %s\n%s", toEmail, subject, strings.TrimSpace(plainTextBody))
	return nil
}
