package ledger

import (
	"context"
	"sync"

	"github.com/iurnickita/reviewme/internal/model"
)

// Реестр в памяти для тестов
type MemLedger struct {
	mutex   sync.Mutex
	records map[string]model.DiscountRecord
}

func NewMemLedger() *MemLedger {
	return &MemLedger{
		records: make(map[string]model.DiscountRecord),
	}
}

func (ledger *MemLedger) Exists(_ context.Context, code string) (bool, error) {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()

	_, ok := ledger.records[code]
	return ok, nil
}

func (ledger *MemLedger) Create(_ context.Context, record model.DiscountRecord) error {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()

	// проверка и вставка под одной блокировкой
	if _, ok := ledger.records[record.Code]; ok {
		return ErrAlreadyExists
	}
	ledger.records[record.Code] = record
	return nil
}

// Get возвращает запись по коду. Нужен только тестам
func (ledger *MemLedger) Get(code string) (model.DiscountRecord, bool) {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()

	record, ok := ledger.records[code]
	return record, ok
}

// Len возвращает количество записей. Нужен только тестам
func (ledger *MemLedger) Len() int {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()

	return len(ledger.records)
}
