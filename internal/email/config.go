package email

import "fmt"

// Config holds SMTP connection settings.
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool

	// ClientURL is the web client base, used for links inside emails.
	ClientURL string
}

func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

func (c Config) addr() string {
	return fmt.Sprintf("%s:%d", c.SMTPHost, c.SMTPPort)
}
