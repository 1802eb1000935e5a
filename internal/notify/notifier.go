package notify

import (
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Notifier sends one outbound message. Implementations must never let a
// transport failure escape: the boolean is the whole delivery contract.
type Notifier interface {
	Send(to, subject, body string) bool
}

// SMTPNotifier talks to a plain SMTP relay. No retry, no backoff, no
// delivery confirmation beyond the transport's immediate acknowledgement.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewSMTPNotifier(host string, port int, user, pass, from string, logger *zap.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		logger: logger,
	}
}

func (n *SMTPNotifier) Send(to, subject, body string) bool {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Error("email send failed", zap.String("to", to), zap.Error(err))
		return false
	}

	n.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return true
}
