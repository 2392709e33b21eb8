package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/iurnickita/reviewme/internal/config"
	"github.com/iurnickita/reviewme/internal/handler"
	"github.com/iurnickita/reviewme/internal/logger"
	"github.com/iurnickita/reviewme/internal/notifier"
	"github.com/iurnickita/reviewme/internal/service"
	"github.com/iurnickita/reviewme/internal/service/rewardclient"
)

// Сервер стороны-просителя: принимает триггер после отзыва
// и запрашивает код скидки у магазина

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

	sender := notifier.NewMailSender(cfg.Notifier)
	notifier, err := notifier.NewNotifier(cfg.Notifier, sender, zaplog)
	if err != nil {
		return err
	}

	client := rewardclient.NewRewardClient(cfg.Service.ShopURL, cfg.Service.SiteURL)
	service := service.NewService(cfg.Service, client, notifier, zaplog)

	zaplog.Info("review prompt instance registered",
		zap.String("link_id", service.LinkID()))

	return handler.ServeRequester(cfg.Handler, service, zaplog)
}
