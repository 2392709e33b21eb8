package notifier

import (
	"strconv"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/iurnickita/reviewme/internal/model"
	"github.com/iurnickita/reviewme/internal/notifier/config"
)

// Текст письма по умолчанию
const defaultBody ="<p>Hi,</p><p>From our entire team, many thanks for your review.</p><p>While you just spent a few minutes writing it, your testimonial will be a big help to us.</p><p>Many users don't realize it but reviews are a key part of the promotion work for our product. This allows us to increase our user base, and thus get more support for improving our product.</p><p>As a thank you from us, please find hereafter your discount code for a {{amount}} discount valid until {{expiration}}:</p><p>Your discount code: <strong>{{code}}</strong></p><p>Enjoy the product!</p>"

const (
	defaultSubject    = "Your discount code"
	defaultDateFormat = "January 2, 2006"
)

// Notifier отправляет письмо о выданном коде.
// Получатель - адрес администратора сайта, не рецензент.
// Неудача доставки не меняет итог выдачи, поэтому только bool
type Notifier interface {
	Notify(code string, discount model.DiscountConfig) bool
}

// Sender - транспорт доставки. Вынесен в интерфейс для тестов
type Sender interface {
	Send(to string, subject string, fromName string, fromEmail string, htmlBody string) error
}

type notifier struct {
	cfg      config.Config
	template Template
	sender   Sender
	zaplog   *zap.Logger
}

func NewNotifier(cfg config.Config, sender Sender, zaplog *zap.Logger) (Notifier, error) {
	body := defaultBody
	if cfg.Body != "" {
		body = cfg.Body
	}

	template, err := NewTemplate(body)
	if err != nil {
		return nil, err
	}

	return &notifier{
		cfg:      cfg,
		template: template,
		sender:   sender,
		zaplog:   zaplog,
	}, nil
}

func (notifier *notifier) Notify(code string, discount model.DiscountConfig) bool {
	// сумма с "%" для процентной скидки
	amount := strconv.Itoa(discount.Amount)
	if discount.Type == model.DiscountTypePercentage {
		amount = amount + "%"
	}

	// срок действия от момента выдачи
	dateFormat := notifier.cfg.DateFormat
	if dateFormat == "" {
		dateFormat = defaultDateFormat
	}
	expiration := time.Now().AddDate(0, 0, discount.Validity).Format(dateFormat)

	body := notifier.template.Render(code, amount, expiration)

	// незаданные реквизиты берем из настроек сайта
	subject := notifier.cfg.Subject
	if subject == "" {
		subject = defaultSubject
	}
	fromName := notifier.cfg.FromName
	if fromName == "" {
		fromName = notifier.cfg.SiteName
	}
	fromEmail := notifier.cfg.FromEmail
	if fromEmail == "" {
		fromEmail = notifier.cfg.AdminEmail
	}

	err := notifier.sender.Send(notifier.cfg.AdminEmail, subject, fromName, fromEmail, body)
	if err != nil {
		notifier.zaplog.Error("discount code mail delivery failed",
			zap.String("code", code),
			zap.Error(err),
		)
		return false
	}
	return true
}

// Отправка через SMTP

type mailSender struct {
	cfg config.Config
}

func NewMailSender(cfg config.Config) Sender {
	return &mailSender{cfg: cfg}
}

func (sender *mailSender) Send(to string, subject string, fromName string, fromEmail string, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(fromName, fromEmail); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(sender.cfg.SMTPHost,
		mail.WithPort(sender.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(sender.cfg.SMTPUser),
		mail.WithPassword(sender.cfg.SMTPPassword))
	if err != nil {
		return err
	}

	return client.DialAndSend(msg)
}
