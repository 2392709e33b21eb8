package config

type Config struct {
	// адрес сервера моста магазина
	ShopAddr string `yaml:"shop_addr"`
	// адрес сервера стороны-просителя
	RequesterAddr string `yaml:"requester_addr"`
}
