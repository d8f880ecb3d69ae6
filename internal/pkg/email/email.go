package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendWelcome(to, employeeName, companyName, loginEmail, tempPassword, loginLink string) error
	SendAbsenceNotice(to, employeeName, companyName, date string) error
	SendAbsenceSummary(to, companyName, date string, absentEmployees []string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type welcomeEmailData struct {
	EmployeeName string
	CompanyName  string
	LoginEmail   string
	TempPassword string
	LoginLink    string
}

// SendWelcome sends first-access credentials to a newly registered
// employee.
func (s *emailServiceImpl) SendWelcome(to, employeeName, companyName, loginEmail, tempPassword, loginLink string) error {
	data := welcomeEmailData{
		EmployeeName: employeeName,
		CompanyName:  companyName,
		LoginEmail:   loginEmail,
		TempPassword: tempPassword,
		LoginLink:    loginLink,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "welcome.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Bem-vindo ao controle de ponto de %s", companyName), body.String())
}

type absenceNoticeEmailData struct {
	EmployeeName string
	CompanyName  string
	Date         string
}

// SendAbsenceNotice notifies an employee that a workday passed without
// any punch.
func (s *emailServiceImpl) SendAbsenceNotice(to, employeeName, companyName, date string) error {
	data := absenceNoticeEmailData{
		EmployeeName: employeeName,
		CompanyName:  companyName,
		Date:         date,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "absence_notice.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Ausência registrada no seu ponto", body.String())
}

type absenceSummaryEmailData struct {
	CompanyName     string
	Date            string
	AbsentEmployees []string
}

// SendAbsenceSummary sends the client company the list of employees
// with no punch on a designated workday.
func (s *emailServiceImpl) SendAbsenceSummary(to, companyName, date string, absentEmployees []string) error {
	data := absenceSummaryEmailData{
		CompanyName:     companyName,
		Date:            date,
		AbsentEmployees: absentEmployees,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "absence_summary.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Ausências do dia %s", date), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
