package mailer

import (
	"bytes"
	"html/template"
)

// WelcomeData feeds the welcome email rendered for auth.user_registered
// events.
type WelcomeData struct {
	Email       string
	CompanyName string
	SupportURL  string
}

var welcomeHTML = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome{{if .CompanyName}} to {{.CompanyName}}{{end}}!</h2>
    <p>Your account <strong>{{.Email}}</strong> has been created.</p>
    <p>You can now sign in with your email address and password.</p>
    {{if .SupportURL}}<p>Questions? Visit <a href="{{.SupportURL}}">our support page</a>.</p>{{end}}
  </body>
</html>`))

// RenderWelcome returns the subject, text, and HTML bodies for a welcome
// email.
func RenderWelcome(data WelcomeData) (subject, text, html string, err error) {
	var buf bytes.Buffer
	if err := welcomeHTML.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	subject = "Welcome aboard"
	if data.CompanyName != "" {
		subject = "Welcome to " + data.CompanyName
	}
	text = "Your account " + data.Email + " has been created. You can now sign in."
	return subject, text, buf.String(), nil
}
