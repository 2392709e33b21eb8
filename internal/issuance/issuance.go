package issuance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iurnickita/reviewme/internal/code"
	"github.com/iurnickita/reviewme/internal/compat"
	"github.com/iurnickita/reviewme/internal/issuance/config"
	"github.com/iurnickita/reviewme/internal/ledger"
	"github.com/iurnickita/reviewme/internal/model"
)

// Сервис выдачи кода скидки на стороне магазина
type Issuance interface {
	Issue(email string, discount model.DiscountConfig) model.IssueResult
}

var (
	ErrIncompatibleHost     = errors.New("host version incompatible")
	ErrIncompatibleRuntime  = errors.New("runtime version incompatible")
	ErrExtensionUnavailable = errors.New("commerce extension not active")
	ErrMissingIdentity      = errors.New("email missing")
	ErrDuplicateCode        = errors.New("code already claimed")
	ErrCreationFailed       = errors.New("unknown error")
)

type issuance struct {
	cfg config.Config
	// nil означает, что коммерческое расширение не установлено
	ledger ledger.Ledger
}

func NewIssuance(cfg config.Config, ledger ledger.Ledger) Issuance {
	return &issuance{
		cfg:    cfg,
		ledger: ledger,
	}
}

// Issue проводит цепочку проверок и создает запись скидки.
// Любой отказ терминален, повторов нет. Ошибки бизнес-логики
// возвращаются в структуре результата, не через error.
// Обрыв соединения с той стороной начатую выдачу не прерывает
func (issuance *issuance) Issue(email string, discount model.DiscountConfig) model.IssueResult {
	ctx := context.Background()

	if !compat.HostCompatible(issuance.cfg.HostVersion, issuance.cfg.HostVersionRequired) {
		return model.Error(ErrIncompatibleHost.Error())
	}

	if !compat.RuntimeCompatible(issuance.cfg.RuntimeVersionRequired) {
		return model.Error(ErrIncompatibleRuntime.Error())
	}

	if issuance.ledger == nil {
		return model.Error(ErrExtensionUnavailable.Error())
	}

	if email == "" {
		return model.Error(ErrMissingIdentity.Error())
	}

	// код детерминирован: один e-mail - один код навсегда
	discountCode := code.Derive(email)

	exists, err := issuance.ledger.Exists(ctx, discountCode)
	if err != nil {
		return model.Error(ErrCreationFailed.Error())
	}
	if exists {
		return model.Error(ErrDuplicateCode.Error())
	}

	err = issuance.ledger.Create(ctx, newRecord(discountCode, email, discount))
	if err != nil {
		// гонка двух запросов: хранилище отклонило дубль
		if errors.Is(err, ledger.ErrAlreadyExists) {
			return model.Error(ErrDuplicateCode.Error())
		}
		return model.Error(ErrCreationFailed.Error())
	}

	return model.Success(discountCode)
}

func newRecord(discountCode string, email string, discount model.DiscountConfig) model.DiscountRecord {
	if discount.Type == "" {
		discount.Type = model.DefaultDiscountConfig().Type
	}
	if discount.Amount == 0 {
		discount.Amount = model.DefaultDiscountConfig().Amount
	}
	if discount.Validity == 0 {
		discount.Validity = model.DefaultDiscountConfig().Validity
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)

	var record model.DiscountRecord
	record.Code = discountCode
	record.Data.Name = fmt.Sprintf("Discount for a review %s", email)
	record.Data.Status = model.DiscountStatusActive
	record.Data.Uses = 0
	record.Data.MaxUses = 1
	record.Data.Amount = discount.Amount
	record.Data.Type = discount.Type
	record.Data.Start = start
	record.Data.Expiration = start.AddDate(0, 0, discount.Validity)
	record.Data.NotGlobal = true
	record.Data.UseOnce = true
	return record
}
