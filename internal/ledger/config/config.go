package config

type Config struct {
	DBDsn string `yaml:"db_dsn"`
}
