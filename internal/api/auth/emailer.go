package auth

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/fazal-dev56/CS50-FindMyBud/config"

	"github.com/sirupsen/logrus"
)

const smtpTimeout = 10 * time.Second

// SendVerificationEmail delivers the verification link to the new user.
// Without SMTP credentials it degrades to logging the link so the flow
// keeps working in environments with no mail configured. Real transport
// failures are returned to the caller.
func SendVerificationEmail(to string, link string) error {
	if !config.MailConfigured() {
		logrus.WithFields(logrus.Fields{
			"to":   to,
			"link": link,
		}).Warn("Mail not configured, verification link logged instead")
		return nil
	}

	from := config.SMTP_FROM
	subject := "Verify your FindMyBud account"
	body := fmt.Sprintf("Hi,\n\n"+
		"Thanks for registering on FindMyBud!\n\n"+
		"Please verify your email by clicking the link below:\n%s\n\n"+
		"This link will expire in 1 hour.\n\n"+
		"If you didn't create this account, you can safely ignore this email.\n\n"+
		"-- FindMyBud Team\n", link)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := sendMail(config.SMTP_HOST, config.SMTP_PORT, from, config.SMTP_PASSWORD, to, message)
	if err != nil {
		logrus.WithError(err).WithField("to", to).Error("SMTP send failed")
	}
	return err
}

// sendMail is smtp.SendMail with an explicit dial deadline so a broken
// transport cannot stall registration indefinitely.
func sendMail(host, port, from, password, to string, message []byte) error {
	addr := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", addr, smtpTimeout)
	if err != nil {
		return err
	}
	conn.SetDeadline(time.Now().Add(smtpTimeout))

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if err := client.Auth(smtp.PlainAuth("", from, password, host)); err != nil {
		return err
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
