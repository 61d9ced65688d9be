// internal/email/mailer/welcome.go
package mailer

import (
	"github.com/studyconnect/backend/internal/email"
)

type welcomeEmailData struct {
	Name string
}

// SendWelcomeEmail greets a freshly registered user.
func SendWelcomeEmail(svc *email.Service, to, name string) error {
	return svc.SendEmail(email.EmailData{
		To:           to,
		FromName:     "StudyConnect",
		Subject:      "Welcome to StudyConnect",
		TemplateName: "welcome",
		TemplateData: welcomeEmailData{Name: name},
	})
}
