package model

import "time"

// Настройки скидки

type DiscountConfig struct {
	Type     string
	Amount   int
	Validity int // в днях
}

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFlat       = "flat"
)

// Значения по умолчанию
func DefaultDiscountConfig() DiscountConfig {
	return DiscountConfig{
		Type:     DiscountTypePercentage,
		Amount:   20,
		Validity: 30,
	}
}

// Запись скидки в реестре магазина

type DiscountRecord struct {
	Code string
	Data DiscountRecordData
}
type DiscountRecordData struct {
	Name       string
	Status     string
	Uses       int
	MaxUses    int
	Amount     int
	Type       string
	Start      time.Time
	Expiration time.Time
	NotGlobal  bool
	UseOnce    bool
}

const DiscountStatusActive = "active"

// Результат выдачи кода

type IssueResult struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

const (
	IssueResultSuccess = "success"
	IssueResultError   = "error"
)

func Success(code string) IssueResult {
	return IssueResult{Result: IssueResultSuccess, Message: code}
}

func Error(reason string) IssueResult {
	return IssueResult{Result: IssueResultError, Message: reason}
}

// Поля протокола обмена между сайтами.
// Менять нельзя: вторая сторона разбирает запрос по этим именам
const (
	FieldAction           = "wrm_action"
	ActionDiscount        = "discount"
	FieldEmail            = "wrm_email"
	FieldDiscountType     = "wrm_discount[type]"
	FieldDiscountAmount   = "wrm_discount[amount]"
	FieldDiscountValidity = "wrm_discount[validity]"

	// плоский вариант тех же полей
	FieldFlatDiscountType     = "wrm_discount_type"
	FieldFlatDiscountAmount   = "wrm_discount_amount"
	FieldFlatDiscountValidity = "wrm_discount_validity"
)
