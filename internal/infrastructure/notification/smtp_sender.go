package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strconv"
	"strings"

	"insumos_limpeza/internal/domain/entities"
	"insumos_limpeza/internal/infrastructure/report"

	"github.com/domodwyer/mailyak/v3"
)

var ErrSMTPNotConfigured = errors.New("smtp not configured")
var ErrMissingRecipient = errors.New("calculation has no contact e-mail")

const reportSubject = "Sua estimativa de insumos de limpeza"

// SMTPConfig is read from SMTP_* and REPORT_FROM_*, REPORT_BCC_EMAIL env vars.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Bcc      []string
}

func SMTPConfigFromEnv() SMTPConfig {
	port, err := strconv.Atoi(getenvDefault("SMTP_PORT", "587"))
	if err != nil || port <= 0 {
		port = 587
	}
	cfg := SMTPConfig{
		Host:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getenvDefault("REPORT_FROM_EMAIL", "relatorios@insumoslimpeza.com.br"),
		FromName: getenvDefault("REPORT_FROM_NAME", "Insumos de Limpeza"),
	}
	for _, addr := range strings.Split(os.Getenv("REPORT_BCC_EMAIL"), ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			cfg.Bcc = append(cfg.Bcc, addr)
		}
	}
	return cfg
}

// SMTPSender e-mails the rendered report to the lead.
type SMTPSender struct {
	cfg  SMTPConfig
	send func(*mailyak.MailYak) error
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, ErrSMTPNotConfigured
	}
	return &SMTPSender{
		cfg:  cfg,
		send: func(m *mailyak.MailYak) error { return m.Send() },
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, rec entities.CalculationRecord, attachments []entities.ReportAttachment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := s.message(rec, attachments)
	if err != nil {
		return err
	}
	log.Printf("[report][smtp] send start id=%s to=%s attachments=%d", rec.ID, rec.Contato.Email, len(attachments))
	if err := s.send(m); err != nil {
		log.Printf("[report][smtp] send failed id=%s err=%v", rec.ID, err)
		return fmt.Errorf("smtp send: %w", err)
	}
	log.Printf("[report][smtp] send success id=%s", rec.ID)
	return nil
}

func (s *SMTPSender) message(rec entities.CalculationRecord, attachments []entities.ReportAttachment) (*mailyak.MailYak, error) {
	to := strings.TrimSpace(rec.Contato.Email)
	if to == "" {
		return nil, ErrMissingRecipient
	}

	var auth smtp.Auth
	if s.cfg.Password != "" {
		user := s.cfg.Username
		if user == "" {
			user = s.cfg.From
		}
		auth = smtp.PlainAuth("", user, s.cfg.Password, s.cfg.Host)
	}

	m := mailyak.New(fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port), auth)
	m.To(to)
	m.From(s.cfg.From)
	m.FromName(s.cfg.FromName)
	if len(s.cfg.Bcc) > 0 {
		m.Bcc(s.cfg.Bcc...)
	}
	m.Subject(reportSubject)
	m.Plain().Set(messageBody(rec))

	for _, a := range attachments {
		m.AttachWithMimeType(a.FileName, bytes.NewReader(a.Content), a.ContentType)
	}
	return m, nil
}

func messageBody(rec entities.CalculationRecord) string {
	name := strings.TrimSpace(rec.Contato.Nome)
	if name == "" {
		name = "cliente"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Olá, %s.\n\n", name)
	fmt.Fprintf(&b, "Segue em anexo a estimativa mensal de insumos de limpeza (cálculo %s).\n\n", rec.ID)
	fmt.Fprintf(&b, "Custo mensal estimado: %s\n", report.FormatBRL(rec.Result.CustoMensalTotal))
	fmt.Fprintf(&b, "Com assinatura (%.0f%% de desconto): %s\n\n", rec.Result.PercentualDesconto, report.FormatBRL(rec.Result.CustoComDesconto))
	if rec.Result.EstimativaMensal != "" {
		b.WriteString(rec.Result.EstimativaMensal)
		b.WriteString("\n")
	}
	return b.String()
}

// LogSender only logs deliveries. Used when SMTP_HOST is not set.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, rec entities.CalculationRecord, attachments []entities.ReportAttachment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	names := make([]string, 0, len(attachments))
	for _, a := range attachments {
		names = append(names, a.FileName)
	}
	log.Printf("[report][log-sender] delivery skipped id=%s to=%s attachments=%s", rec.ID, rec.Contato.Email, strings.Join(names, ","))
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
