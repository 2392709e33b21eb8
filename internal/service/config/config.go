package config

type Config struct {
	// адрес магазина, выдающего коды
	ShopURL string `yaml:"shop_url"`
	// адрес этого сайта, уходит в User-Agent
	SiteURL string `yaml:"site_url"`
	// контактный адрес администратора: из него выводится код скидки
	AdminEmail string `yaml:"admin_email"`

	// настройки запрашиваемой скидки, пустые поля - умолчания
	DiscountType     string `yaml:"discount_type"`
	DiscountAmount   int    `yaml:"discount_amount"`
	DiscountValidity int    `yaml:"discount_validity"`
}
