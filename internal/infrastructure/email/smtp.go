package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"covena/internal/domain/alert"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// Recipients for escalation notices, typically the credit risk desk.
	EscalationRecipients []string
}

// SMTPEmailService sends escalation notices over SMTP. It implements the
// alert usecases' EscalationNotifier.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) NotifyEscalation(ctx context.Context, a *alert.Alert) error {
	if len(s.config.EscalationRecipients) == 0 {
		return fmt.Errorf("no escalation recipients configured")
	}

	subject := fmt.Sprintf("[%s] Escalated: %s", strings.ToUpper(a.Severity().String()), a.Title())

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Covenant alert escalated</h2>
			<p>%s</p>
			<table>
				<tr><td>Severity</td><td>%s</td></tr>
				<tr><td>Metric value</td><td>%g</td></tr>
				<tr><td>Threshold</td><td>%g</td></tr>
				<tr><td>Triggered</td><td>%s</td></tr>
				<tr><td>Reason</td><td>%s</td></tr>
			</table>
			<p>Please acknowledge this alert in the compliance dashboard.</p>
		</body>
		</html>
	`,
		a.Description(),
		a.Severity().String(),
		a.TriggerMetricValue(),
		a.ThresholdValue(),
		a.TriggeredAt().Format("2006-01-02 15:04 MST"),
		a.EscalationReason(),
	)

	plainBody := fmt.Sprintf(`Covenant alert escalated

%s

Severity:     %s
Metric value: %g
Threshold:    %g
Triggered:    %s
Reason:       %s

Please acknowledge this alert in the compliance dashboard.
`,
		a.Description(),
		a.Severity().String(),
		a.TriggerMetricValue(),
		a.ThresholdValue(),
		a.TriggeredAt().Format("2006-01-02 15:04 MST"),
		a.EscalationReason(),
	)

	return s.sendEmail(s.config.EscalationRecipients, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to []string, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
