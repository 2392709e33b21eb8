package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg, err := getConfig("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Handler.ShopAddr)
	require.Equal(t, "3.8", cfg.Issuance.HostVersionRequired)
	require.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestGetConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
handler:
  shop_addr: ":9090"
issuance:
  host_version: "4.7"
service:
  shop_url: https://shop.example.com
  admin_email: admin@example.com
ledger:
  db_dsn: postgres://localhost/shop
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := getConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Handler.ShopAddr)
	require.Equal(t, "4.7", cfg.Issuance.HostVersion)
	require.Equal(t, "https://shop.example.com", cfg.Service.ShopURL)
	require.Equal(t, "postgres://localhost/shop", cfg.Ledger.DBDsn)
	// незатронутые файлом значения остаются умолчаниями
	require.Equal(t, ":8081", cfg.Handler.RequesterAddr)
	require.Equal(t, 587, cfg.Notifier.SMTPPort)
}

func TestGetConfigEnvOverride(t *testing.T) {
	t.Setenv("REVIEWME_DB_DSN", "postgres://env/shop")

	cfg, err := getConfig("")
	require.NoError(t, err)
	require.Equal(t, "postgres://env/shop", cfg.Ledger.DBDsn)
}
