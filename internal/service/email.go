package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/logger"
)

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewEmailService builds the SendGrid-backed mailer. With an empty API key
// every send is a logged no-op, which keeps local development and tests
// free of network calls.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	svc := &emailService{
		fromEmail: fromEmail,
		fromName:  fromName,
	}
	if apiKey != "" {
		svc.client = sendgrid.NewSendClient(apiKey)
	}
	return svc
}

func (s *emailService) send(ctx context.Context, to, subject, plainText, htmlBody string) error {
	if s.client == nil {
		logger.InfoContext(ctx, "Email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plainText, htmlBody)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func (s *emailService) SendBookingRequestNotification(ctx context.Context, to, requesterName, toolName string, start, end time.Time) error {
	subject := fmt.Sprintf("Booking request: %s", toolName)
	text := fmt.Sprintf("%s has requested %s from %s to %s. Review the request in the dashboard.",
		requesterName, toolName, start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	html := fmt.Sprintf("<p><strong>%s</strong> has requested <strong>%s</strong> from %s to %s.</p><p>Review the request in the dashboard.</p>",
		requesterName, toolName, start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	return s.send(ctx, to, subject, text, html)
}

func (s *emailService) SendBookingDecisionNotification(ctx context.Context, to, toolName string, approved bool) error {
	decision := "rejected"
	if approved {
		decision = "approved"
	}
	subject := fmt.Sprintf("Booking %s: %s", decision, toolName)
	text := fmt.Sprintf("Your booking for %s has been %s.", toolName, decision)
	html := fmt.Sprintf("<p>Your booking for <strong>%s</strong> has been %s.</p>", toolName, decision)
	return s.send(ctx, to, subject, text, html)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, to, toolName string, end time.Time) error {
	subject := fmt.Sprintf("Overdue return: %s", toolName)
	text := fmt.Sprintf("%s was due back on %s. Please return it as soon as possible.",
		toolName, end.Format("Jan 2, 2006"))
	html := fmt.Sprintf("<p><strong>%s</strong> was due back on %s.</p><p>Please return it as soon as possible.</p>",
		toolName, end.Format("Jan 2, 2006"))
	return s.send(ctx, to, subject, text, html)
}

func (s *emailService) SendMaintenanceReminder(ctx context.Context, to, toolName, description string, start time.Time) error {
	subject := fmt.Sprintf("Upcoming maintenance: %s", toolName)
	text := fmt.Sprintf("Maintenance for %s starts on %s: %s",
		toolName, start.Format("Jan 2, 2006"), description)
	html := fmt.Sprintf("<p>Maintenance for <strong>%s</strong> starts on %s.</p><p>%s</p>",
		toolName, start.Format("Jan 2, 2006"), description)
	return s.send(ctx, to, subject, text, html)
}

func (s *emailService) SendLowStockAlert(ctx context.Context, to string, parts []domain.SparePart) error {
	subject := "Spare parts below minimum stock"
	text := "The following spare parts are at or below their minimum stock level:\n"
	html := "<p>The following spare parts are at or below their minimum stock level:</p><ul>"
	for i := range parts {
		p := &parts[i]
		text += fmt.Sprintf("- %s: %d on hand (minimum %d)\n", p.Name, p.Quantity, p.MinQuantity)
		html += fmt.Sprintf("<li><strong>%s</strong>: %d on hand (minimum %d)</li>", p.Name, p.Quantity, p.MinQuantity)
	}
	html += "</ul>"
	return s.send(ctx, to, subject, text, html)
}
