// services/mail_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"clubcentral/internal/models/db_models"
)

type IMailService interface {
	// SendAdminRequestDecision tells a requester their admin-access
	// request was approved or rejected.
	SendAdminRequestDecision(to, name, status string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"; empty disables mail entirely
	Port     int    // e.g. 587 (STARTTLS)
	Username string
	Password string
	From     string // envelope from, e.g. "no-reply@clubcentral.app"
	FromName string
	AppName  string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("decisionHTML").Parse(decisionHTMLTemplate)),
	}
}

type decisionEmailData struct {
	Name    string
	Line    string
	AppName string
	Year    int
}

const decisionHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.AppName}}</title></head>
<body style="margin:0;padding:24px;background:#f1f5f9;font-family:Arial,Helvetica,sans-serif;color:#0f172a">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px">
    <h1 style="margin:0 0 16px;font-size:22px">{{.AppName}}</h1>
    <p style="margin:0 0 12px;line-height:1.6">Hi {{.Name}},</p>
    <p style="margin:0 0 20px;line-height:1.6">{{.Line}}</p>
    <p style="margin:0;color:#64748b;font-size:13px">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

func (s *smtpMailService) SendAdminRequestDecision(to, name, status string) error {
	if s.cfg.Host == "" {
		log.Printf("Mail disabled; skipping admin request decision email to %s", to)
		return nil
	}

	var subject, line string
	switch status {
	case db_models.AdminRequestApproved:
		subject = "Your admin access request was approved"
		line = "Good news: your request for admin access has been approved. Sign in again to pick up your new permissions."
	case db_models.AdminRequestRejected:
		subject = "Your admin access request was declined"
		line = "Your request for admin access has been declined. You can reach out to a club admin if you think this is a mistake."
	default:
		// pending and unknown statuses produce no mail
		return nil
	}

	var html bytes.Buffer
	err := s.htmlTpl.Execute(&html, decisionEmailData{
		Name:    name,
		Line:    line,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return s.send(to, subject, html.String())
}

func (s *smtpMailService) send(to, subject, htmlBody string) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	headers := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		s.cfg.FromName, s.cfg.From, to, subject)
	msg := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg)
}
