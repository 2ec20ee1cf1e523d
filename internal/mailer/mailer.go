package mailer

import "gopkg.in/gomail.v2"

// Mailer sends seller-facing notifications. Delivery is best-effort; the
// submission flow logs and moves on when a send fails.
type Mailer struct {
	from     string
	password string
	host     string
	port     int
}

func New(from, password string) *Mailer {
	return &Mailer{
		from:     from,
		password: password,
		host:     "smtp.gmail.com",
		port:     587,
	}
}

func (m *Mailer) SendSubmissionReceivedEmail(toEmail, parcelName string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Your land listing was received")
	msg.SetBody("text/plain",
		"Your listing '"+parcelName+"' has been submitted and is pending verification. "+
			"We'll review your submission and notify you once it's live on our platform.")

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)
	return d.DialAndSend(msg)
}
