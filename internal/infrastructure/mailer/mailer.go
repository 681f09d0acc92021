package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/skatespot-service/internal/config"
)

// Mailer отправляет уведомления по email. При выключенном SMTP все
// методы только пишут в лог, чтобы локальная разработка не требовала сервера.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	enabled bool
	logger  *zap.Logger
}

// New создает почтовый клиент по конфигурации SMTP
func New(cfg *config.SMTPConfig, logger *zap.Logger) *Mailer {
	m := &Mailer{
		from:    cfg.From,
		enabled: cfg.Enabled,
		logger:  logger,
	}

	if cfg.Enabled {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}

	return m
}

func (m *Mailer) send(to, subject, body string) error {
	if !m.enabled {
		m.logger.Debug("Mailer disabled, skipping email",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// SendPurchaseReceipt уведомляет покупателя об успешной покупке
func (m *Mailer) SendPurchaseReceipt(to, itemTitle string, price float64) error {
	body := fmt.Sprintf("You bought %q for %.2f. Thanks for keeping boards rolling!", itemTitle, price)
	return m.send(to, "Purchase confirmed", body)
}

// SendSaleNotice уведомляет продавца о продаже товара
func (m *Mailer) SendSaleNotice(to, itemTitle string, price float64) error {
	body := fmt.Sprintf("Your item %q sold for %.2f. The funds are on your balance.", itemTitle, price)
	return m.send(to, "Item sold", body)
}

// SendSpotApproved уведомляет автора об одобрении спота
func (m *Mailer) SendSpotApproved(to, spotTitle string) error {
	body := fmt.Sprintf("Your spot %q was approved and is now visible to everyone.", spotTitle)
	return m.send(to, "Spot approved", body)
}
