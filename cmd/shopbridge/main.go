package main

import (
	"log"

	"github.com/iurnickita/reviewme/internal/config"
	"github.com/iurnickita/reviewme/internal/handler"
	"github.com/iurnickita/reviewme/internal/issuance"
	"github.com/iurnickita/reviewme/internal/ledger"
	"github.com/iurnickita/reviewme/internal/logger"
)

// Сервер стороны магазина: принимает запросы на выдачу кода скидки

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	zaplog, err := logger.NewZapLog(cfg.Logger)
	if err != nil {
		return err
	}

	// пустой DSN означает, что коммерческое расширение не установлено:
	// сервис выдачи будет отвечать отказом
	var discountLedger ledger.Ledger
	if cfg.Ledger.DBDsn != "" {
		discountLedger, err = ledger.NewLedger(cfg.Ledger)
		if err != nil {
			return err
		}
	}

	issuance := issuance.NewIssuance(cfg.Issuance, discountLedger)

	return handler.ServeShop(cfg.Handler, issuance, zaplog)
}
