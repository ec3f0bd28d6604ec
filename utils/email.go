package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendContactNotification emails the configured contact address when a new
// contact-form message arrives. Failures are reported to the caller, which
// treats notification as best effort.
func SendContactNotification(name, email, title, body string) error {
	to := os.Getenv("CONTACT_EMAIL")
	if to == "" {
		return fmt.Errorf("CONTACT_EMAIL not configured")
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "New contact message: "+title)
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>New contact message</h2>
		<p><b>From:</b> %s (%s)</p>
		<p><b>Title:</b> %s</p>
		<p>%s</p>
	`, name, email, title, body))

	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
