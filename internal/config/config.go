package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	handlerConfig "github.com/iurnickita/reviewme/internal/handler/config"
	issuanceConfig "github.com/iurnickita/reviewme/internal/issuance/config"
	ledgerConfig "github.com/iurnickita/reviewme/internal/ledger/config"
	loggerConfig "github.com/iurnickita/reviewme/internal/logger/config"
	notifierConfig "github.com/iurnickita/reviewme/internal/notifier/config"
	serviceConfig "github.com/iurnickita/reviewme/internal/service/config"
)

type Config struct {
	Handler  handlerConfig.Config  `yaml:"handler"`
	Issuance issuanceConfig.Config `yaml:"issuance"`
	Ledger   ledgerConfig.Config   `yaml:"ledger"`
	Service  serviceConfig.Config  `yaml:"service"`
	Notifier notifierConfig.Config `yaml:"notifier"`
	Logger   loggerConfig.Config   `yaml:"logger"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Handler.ShopAddr = ":8080"
	cfg.Handler.RequesterAddr = ":8081"
	cfg.Issuance.HostVersionRequired = "3.8"
	cfg.Issuance.RuntimeVersionRequired = "1.21"
	cfg.Logger.LogLevel = "info"
	cfg.Notifier.SMTPPort = 587
	return cfg
}

// GetConfig собирает настройки: умолчания, затем yaml-файл,
// затем переменные окружения
func GetConfig() (Config, error) {
	path := flag.String("config", "", "путь к yaml-файлу настроек")
	flag.Parse()

	if *path == "" {
		*path = os.Getenv("REVIEWME_CONFIG")
	}

	return getConfig(*path)
}

func getConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("чтение файла настроек %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("разбор файла настроек %s: %w", path, err)
		}
	}

	if dsn := os.Getenv("REVIEWME_DB_DSN"); dsn != "" {
		cfg.Ledger.DBDsn = dsn
	}
	if level := os.Getenv("REVIEWME_LOG_LEVEL"); level != "" {
		cfg.Logger.LogLevel = level
	}

	return cfg, nil
}
