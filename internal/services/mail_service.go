package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"path/filepath"
	"strings"

	"inkwell/internal/config"
	"inkwell/internal/forms"
	"inkwell/internal/logger"
	"inkwell/internal/models"
)

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService(cfg config.AppConfig) *MailService {
	enabled := cfg.SMTPHost != "" && cfg.SMTPPort != "" &&
		cfg.SMTPUser != "" && cfg.SMTPPass != "" && cfg.SMTPFrom != ""
	if !enabled {
		logger.L.Warn("mail service disabled: missing SMTP configuration")
	}

	return &MailService{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: Inkwell <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
			logger.S.Errorf("failed to send email to %v: %v", to, err)
		} else {
			logger.S.Infof("email sent to %v: %s", to, subject)
		}
	}()
}

func (s *MailService) parseTemplate(templateName string, data interface{}) (string, error) {
	path := filepath.Join("web", "templates", "email", templateName)
	t, err := template.ParseFiles(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

// SendPostShare mails a post recommendation to the recipient the reader
// named in the share form. The form has already been validated.
func (s *MailService) SendPostShare(form *forms.EmailPostForm, post *models.Post, postURL string) {
	body, err := s.parseTemplate("share.html", map[string]string{
		"SenderName":  form.Name,
		"SenderEmail": form.Email,
		"Comments":    form.Comments,
		"PostTitle":   post.Title,
		"PostURL":     postURL,
	})
	if err != nil {
		logger.S.Errorf("error rendering share email: %v", err)
		return
	}
	subject := fmt.Sprintf("%s recommends you read \"%s\"", form.Name, post.Title)
	s.sendAsync([]string{form.To}, subject, body)
}
