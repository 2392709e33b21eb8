package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iurnickita/reviewme/internal/model"
	"github.com/iurnickita/reviewme/internal/notifier"
	"github.com/iurnickita/reviewme/internal/service/config"
	"github.com/iurnickita/reviewme/internal/service/rewardclient"
)

// Сервис стороны-просителя: один экземпляр на одно уведомление с просьбой
// об отзыве. Чужие триггеры игнорирует
type Service interface {
	// LinkID - идентификатор ссылки этого экземпляра
	LinkID() string
	// QueryDiscount выполняет одну попытку получения кода.
	// Возвращает сообщение для клиента: код либо текст ошибки
	QueryDiscount(ctx context.Context, linkID string) (string, error)
	// ClaimedCode - код, полученный этим экземпляром
	ClaimedCode() string
}

var ErrNotThisInstance = errors.New("not this instance job")

// Состояния одной попытки. Возврата в idle нет:
// новое нажатие - новая попытка, старые не запоминаются
const (
	attemptIdle       = "idle"
	attemptRequesting = "requesting"
	attemptSucceeded  = "succeeded"
	attemptFailed     = "failed"
)

type service struct {
	cfg      config.Config
	client   rewardclient.RewardClient
	notifier notifier.Notifier
	linkID   string
	zaplog   *zap.Logger

	// полученный код. Единственное разделяемое состояние,
	// сетевой вызов выполняется вне блокировки
	mutex       sync.Mutex
	claimedCode string
}

func NewService(cfg config.Config, client rewardclient.RewardClient, notifier notifier.Notifier, zaplog *zap.Logger) Service {
	return &service{
		cfg:      cfg,
		client:   client,
		notifier: notifier,
		linkID:   "wrm-review-link-" + uuid.NewString(),
		zaplog:   zaplog,
	}
}

func (service *service) LinkID() string {
	return service.linkID
}

func (service *service) QueryDiscount(ctx context.Context, linkID string) (string, error) {

	// чужое уведомление - не наша работа
	if linkID != service.linkID {
		return "", ErrNotThisInstance
	}

	state := attemptRequesting

	outcome := service.client.QueryDiscount(ctx, service.cfg.AdminEmail, service.discount())

	if !outcome.Success {
		state = attemptFailed
		service.zaplog.Info("discount query failed",
			zap.String("state", state),
			zap.String("message", outcome.Message),
		)
		return outcome.Message, nil
	}

	state = attemptSucceeded
	service.setClaimedCode(outcome.Message)

	// неудача доставки письма итог не меняет
	delivered := service.notifier.Notify(outcome.Message, service.discount())

	service.zaplog.Info("discount code claimed",
		zap.String("state", state),
		zap.String("code", outcome.Message),
		zap.Bool("mail_delivered", delivered),
	)

	return outcome.Message, nil
}

func (service *service) ClaimedCode() string {
	service.mutex.Lock()
	defer service.mutex.Unlock()

	return service.claimedCode
}

func (service *service) setClaimedCode(code string) {
	service.mutex.Lock()
	defer service.mutex.Unlock()

	service.claimedCode = code
}

// настройки скидки с подстановкой умолчаний
func (service *service) discount() model.DiscountConfig {
	discount := model.DefaultDiscountConfig()
	if service.cfg.DiscountType != "" {
		discount.Type = service.cfg.DiscountType
	}
	if service.cfg.DiscountAmount != 0 {
		discount.Amount = service.cfg.DiscountAmount
	}
	if service.cfg.DiscountValidity != 0 {
		discount.Validity = service.cfg.DiscountValidity
	}
	return discount
}
