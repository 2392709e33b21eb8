package config

type Config struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`

	// реквизиты сайта-отправителя
	SiteName   string `yaml:"site_name"`
	AdminEmail string `yaml:"admin_email"`

	// формат даты хост-платформы (Go layout)
	DateFormat string `yaml:"date_format"`

	// необязательные переопределения письма
	Subject   string `yaml:"subject"`
	FromName  string `yaml:"from_name"`
	FromEmail string `yaml:"from_email"`
	Body      string `yaml:"body"`
}
