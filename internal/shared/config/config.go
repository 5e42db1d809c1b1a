package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"cosmos-server/internal/spatial"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Frontend  FrontendConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Universe  UniverseConfig
}

type ServerConfig struct {
	Port            string
	URL             string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	// Enabled false keeps the universe registry in memory
	Enabled         bool
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
	Issuer          string
}

type FrontendConfig struct {
	URL       string
	CORSDebug bool
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	// GalaxyCost is the number of tokens one galaxy request consumes
	GalaxyCost int
	// RegionCellCost is charged for every cell a region request spans
	RegionCellCost int
	TrustProxy     bool
}

type UniverseConfig struct {
	SizeMin        float64
	SizeMax        float64
	GalaxyCacheTTL time.Duration
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config := Load()
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

// Load reads the configuration from the environment without validating it.
func Load() *Config {
	return &Config{
		Server:    loadServerConfig(),
		Database:  loadDatabaseConfig(),
		Redis:     loadRedisConfig(),
		Auth:      loadAuthConfig(),
		Frontend:  loadFrontendConfig(),
		Logging:   loadLoggingConfig(),
		RateLimit: loadRateLimitConfig(),
		Universe:  loadUniverseConfig(),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            GetEnv("SERVER_PORT", "8080"),
		URL:             GetEnv("SERVER_URL", "http://localhost:8080"),
		Environment:     GetEnv("ENVIRONMENT", "development"),
		ReadTimeout:     GetEnvSeconds("SERVER_READ_TIMEOUT_SECONDS", 15),
		WriteTimeout:    GetEnvSeconds("SERVER_WRITE_TIMEOUT_SECONDS", 30),
		IdleTimeout:     GetEnvSeconds("SERVER_IDLE_TIMEOUT_SECONDS", 60),
		ShutdownTimeout: GetEnvSeconds("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Enabled:         GetEnvBool("DB_ENABLED", true),
		Host:            GetEnv("DB_HOST", "localhost"),
		Port:            GetEnv("DB_PORT", "5432"),
		User:            GetEnv("DB_USER", "postgres"),
		Password:        GetEnv("DB_PASSWORD", "postgres"),
		Name:            GetEnv("DB_NAME", "cosmos"),
		SSLMode:         GetEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    GetEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    GetEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: time.Duration(GetEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
		MigrationsPath:  GetEnv("DB_MIGRATIONS_PATH", "migrations"),
	}
}

func loadRedisConfig() RedisConfig {
	return RedisConfig{
		Enabled:  GetEnvBool("REDIS_ENABLED", false),
		URL:      GetEnv("REDIS_URL", ""),
		Host:     GetEnv("REDIS_HOST", "localhost"),
		Port:     GetEnv("REDIS_PORT", "6379"),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       GetEnvInt("REDIS_DB", 0),
	}
}

func loadAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:       GetEnv("JWT_SECRET", ""),
		TokenExpiration: time.Duration(GetEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
		Issuer:          GetEnv("JWT_ISSUER", "cosmos-server"),
	}
}

func loadFrontendConfig() FrontendConfig {
	return FrontendConfig{
		URL:       GetEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSDebug: GetEnvBool("CORS_DEBUG", false),
	}
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:      GetEnv("LOG_LEVEL", "debug"),
		JSONFormat: GetEnv("ENVIRONMENT", "development") == "production",
	}
}

func loadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:           GetEnvBool("RATE_LIMIT_ENABLED", true),
		RequestsPerSecond: GetEnvFloat("RATE_LIMIT_REQUESTS_PER_SECOND", 10),
		BurstSize:         GetEnvInt("RATE_LIMIT_BURST_SIZE", 125),
		GalaxyCost:        GetEnvInt("RATE_LIMIT_GALAXY_COST", 5),
		RegionCellCost:    GetEnvInt("RATE_LIMIT_REGION_CELL_COST", 1),
		TrustProxy:        GetEnvBool("RATE_LIMIT_TRUST_PROXY", false),
	}
}

func loadUniverseConfig() UniverseConfig {
	return UniverseConfig{
		SizeMin:        GetEnvFloat("UNIVERSE_SIZE_MIN", 40000),
		SizeMax:        GetEnvFloat("UNIVERSE_SIZE_MAX", 300000),
		GalaxyCacheTTL: time.Duration(GetEnvInt("GALAXY_CACHE_TTL_MINUTES", 60)) * time.Minute,
	}
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.Enabled && c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Database.Enabled && c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	if c.Universe.SizeMin <= 0 || c.Universe.SizeMin >= c.Universe.SizeMax {
		return fmt.Errorf("UNIVERSE_SIZE_MIN must be positive and below UNIVERSE_SIZE_MAX")
	}

	if c.RateLimit.Enabled && c.RateLimit.GalaxyCost > c.RateLimit.BurstSize {
		return fmt.Errorf("RATE_LIMIT_GALAXY_COST cannot exceed RATE_LIMIT_BURST_SIZE")
	}

	if c.RateLimit.Enabled && c.RateLimit.RegionCellCost*spatial.RegionSize(spatial.MaxRegionRadius) > c.RateLimit.BurstSize {
		return fmt.Errorf("RATE_LIMIT_BURST_SIZE must cover a region of radius %d at RATE_LIMIT_REGION_CELL_COST", spatial.MaxRegionRadius)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
