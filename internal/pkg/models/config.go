package models

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	JWT         JWTConfig
	MercadoPago MercadoPagoConfig
	Moderation  ModerationConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	// BaseURL is the public site URL used to build checkout redirect pages
	BaseURL string
	// APIBaseURL is the public URL of this API, used for webhook callbacks
	APIBaseURL string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// MercadoPagoConfig contains payment provider configuration
type MercadoPagoConfig struct {
	AccessToken string
	BaseURL     string
	// TimeoutSeconds bounds every outbound call to the provider
	TimeoutSeconds int
	// DefaultInstallments caps installments when the caller does not override it
	DefaultInstallments int
	// DefaultCurrency is applied to items that omit currency_id
	DefaultCurrency string
}

// ModerationConfig contains content moderation configuration
type ModerationConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Enabled        bool
	TimeoutSeconds int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
