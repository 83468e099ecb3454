package email

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/acazacu/credit-docs/internal/config"
)

const docxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendDocumentCopy mails the generated document to the client as an
// attachment.
func (s *Sender) SendDocumentCopy(to, clientName, fileName string, content []byte) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Ваш договор %s", fileName)

	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\n"+
			"Во вложении сгенерированный договор %s.\n"+
			"Пожалуйста, проверьте данные и график платежей.\n",
		clientName, fileName,
	)
	e.Text = []byte(body)

	if _, err := e.Attach(bytes.NewReader(content), fileName, docxMimeType); err != nil {
		return fmt.Errorf("failed to attach document: %w", err)
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
