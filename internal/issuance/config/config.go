package config

type Config struct {
	// текущая версия хост-платформы магазина
	HostVersion string `yaml:"host_version"`
	// минимальные требования
	HostVersionRequired    string `yaml:"host_version_required"`
	RuntimeVersionRequired string `yaml:"runtime_version_required"`
}
