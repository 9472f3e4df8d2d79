package utils

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"github.com/vasthra/vasthra-api/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// MailConfig holds the SMTP account used for outgoing mail.
type MailConfig struct {
	Address  string // host:port passed to smtp.SendMail
	Host     string // host used for PLAIN auth
	From     string
	Password string
}

type OrderEmailData struct {
	Name          string
	OrderID       string
	Status        models.OrderStatus
	Items         []models.OrderItem
	Total         string
	PaymentMethod string
	Address       models.AddressSnapshot
}

// mailTimeout bounds one delivery when the caller's context has no deadline.
const mailTimeout = 15 * time.Second

type sendFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	cfg  MailConfig
	send sendFunc
}

func NewSMTPMailer(cfg MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: sendMail}
}

// SendOrderConfirmation mails the order summary to its buyer.
func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, user *models.User, order *models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := OrderEmailData{
		Name:          user.Name,
		OrderID:       order.OrderID,
		Status:        order.OrderStatus,
		Items:         order.Items,
		Total:         order.TotalAmount.StringFixed(2),
		PaymentMethod: order.PaymentMethod,
		Address:       order.Address.Data(),
	}
	return m.SendEmail(ctx, user.Email, "Your Vasthra order "+order.OrderID, "order_confirmation.html", data)
}

func (m *SMTPMailer) SendEmail(ctx context.Context, emailTo, emailSubject, templateName string, data any) error {
	body, err := renderTemplate(templateName, data)
	if err != nil {
		return err
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.cfg.From,
		emailTo,
		emailSubject,
		body,
	)

	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	if err := m.send(ctx, m.cfg.Address, auth, m.cfg.From, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func renderTemplate(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}

// sendMail is smtp.SendMail with the whole exchange bound to ctx.
func sendMail(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, mailTimeout)
		defer cancel()
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	deadline, _ := ctx.Deadline()
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return err
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

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
	if a != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(a); err != nil {
				return err
			}
		}
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
