package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPProvider is the production Provider over net/smtp.
type SMTPProvider struct {
	config    Config
	templates *TemplateManager
	auth      smtp.Auth
}

func NewSMTPProvider(config Config) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	provider := &SMTPProvider{
		config:    config,
		templates: tm,
	}

	if config.Username != "" && config.Password != "" {
		provider.auth = smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)
	}

	return provider, nil
}

func (p *SMTPProvider) SendVerification(to, url string) error {
	return p.send(KindVerify, []string{to}, "Please verify your email address", map[string]string{"URL": url})
}

func (p *SMTPProvider) SendPasswordReset(to, url string) error {
	return p.send(KindReset, []string{to}, "Reset your password", map[string]string{"URL": url})
}

func (p *SMTPProvider) SendJobAlert(to []string, data JobAlertData) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients specified")
	}
	subject := fmt.Sprintf("A new job for %q", data.JobTitle)
	return p.send(KindJobAlert, to, subject, struct {
		JobAlertData
		ClientURL string
	}{data, p.config.ClientURL})
}

func (p *SMTPProvider) SendOfferLetter(to string, data OfferLetterData) error {
	subject := fmt.Sprintf("Offer letter for %s", data.JobTitle)
	return p.send(KindOfferLetter, []string{to}, subject, data)
}

func (p *SMTPProvider) SendCoverLetter(to string, data CoverLetterData) error {
	subject := fmt.Sprintf("New application for %s", data.JobTitle)
	return p.send(KindCoverLetter, []string{to}, subject, data)
}

func (p *SMTPProvider) SendContactUs(data ContactUsData) error {
	return p.send(KindContactUs, []string{p.config.FromEmail}, "Contact form message", data)
}

func (p *SMTPProvider) Close() error {
	return nil
}

func (p *SMTPProvider) send(kind Kind, to []string, subject string, data interface{}) error {
	htmlBody, err := p.templates.Render(kind, data)
	if err != nil {
		return err
	}

	message := p.buildMessage(to, subject, htmlBody)
	return smtp.SendMail(p.config.addr(), p.auth, p.config.FromEmail, to, message)
}

func (p *SMTPProvider) buildMessage(to []string, subject, htmlBody string) []byte {
	var b strings.Builder

	from := p.config.FromEmail
	if p.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", p.config.FromName, p.config.FromEmail)
	}

	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	return []byte(b.String())
}
