package services

import (
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer is the outbound mail collaborator. The dispatcher only decides
// what to send and whether it was delivered; transport lives behind this.
type Mailer interface {
	Send(toName, toEmail, subject, plainText, htmlBody string) error
}

type sendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
	sandbox   bool
}

func NewSendGridMailer(client *sendgrid.Client, fromName, fromEmail string, sandbox bool) Mailer {
	return &sendGridMailer{
		client:    client,
		fromName:  fromName,
		fromEmail: fromEmail,
		sandbox:   sandbox,
	}
}

func (m *sendGridMailer) Send(toName, toEmail, subject, plainText, htmlBody string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	msg := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)
	if m.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		msg.MailSettings = ms
	}
	_, err := m.client.Send(msg)
	return err
}
