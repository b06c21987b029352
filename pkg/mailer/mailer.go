package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var verificationTmpl = template.Must(template.New("verification").Parse(`<h1>Welcome, {{.Name}}!</h1>
<p>Please verify your email address by clicking the link below:</p>
<a href="{{.Link}}">Verify Email</a>`))

var resetTmpl = template.Must(template.New("reset").Parse(`<h1>Password Reset Request</h1>
<p>Hi {{.Name}},</p>
<p>Click the link below to reset your password. The link expires in one hour.</p>
<a href="{{.Link}}">Reset Password</a>`))

type templateData struct {
	Name string
	Link string
}

// Mailer sends transactional emails over SMTP. The dialer is built once at
// startup and shared for the process lifetime.
type Mailer struct {
	dialer    *gomail.Dialer
	from      string
	clientURL string
	log       *zap.Logger
}

func NewMailer(config utils.EmailConfig, clientURL string, log *zap.Logger) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:      config.From,
		clientURL: clientURL,
		log:       log.With(zap.String("component", "mailer")),
	}
}

// SendVerificationEmail emails the signed verification link.
func (m *Mailer) SendVerificationEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.clientURL, token)
	return m.send(to, "Verify your account", verificationTmpl, templateData{Name: name, Link: link})
}

// SendPasswordResetEmail emails the signed reset link.
func (m *Mailer) SendPasswordResetEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.clientURL, token)
	return m.send(to, "Reset your password", resetTmpl, templateData{Name: name, Link: link})
}

func (m *Mailer) send(to, subject string, tmpl *template.Template, data templateData) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}
