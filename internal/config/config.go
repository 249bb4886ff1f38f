package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Auth       AuthConfig       `toml:"auth"`
	Cloudinary CloudinaryConfig `toml:"cloudinary"`
	Calendar   CalendarConfig   `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	TrustedProxies  []string `toml:"trusted_proxies"` // IP или CIDR
}

// TrustedProxyNets разбирает список доверенных прокси; одиночный IP становится сетью из одного адреса
func (c ServerConfig) TrustedProxyNets() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, entry := range c.TrustedProxies {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			_, ipNet, err := net.ParseCIDR(entry)
			if err != nil {
				return nil, fmt.Errorf("%w: server.trusted_proxies %q: %v", ErrInvalidConfig, entry, err)
			}
			nets = append(nets, ipNet)
			continue
		}
		ip := net.ParseIP(entry)
		if ip == nil {
			return nil, fmt.Errorf("%w: server.trusted_proxies %q is not an IP address", ErrInvalidConfig, entry)
		}
		bits := 8 * net.IPv6len
		if v4 := ip.To4(); v4 != nil {
			ip, bits = v4, 8*net.IPv4len
		}
		nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return nets, nil
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки аутентификации
type AuthConfig struct {
	SessionTTLHours    int          `toml:"session_ttl_hours"`
	BcryptCost         int          `toml:"bcrypt_cost"`
	RateLimitRequests  int          `toml:"rate_limit_requests"`
	RateLimitWindowSec int          `toml:"rate_limit_window_sec"`
	Google             GoogleConfig `toml:"google"`
}

// SessionTTL время жизни сессии
func (c AuthConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// RateLimitWindow окно ограничения частоты запросов
func (c AuthConfig) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

// GoogleConfig OAuth клиент Google
type GoogleConfig struct {
	ClientID        string `toml:"client_id"`
	ClientSecret    string `toml:"client_secret"`
	RedirectURL     string `toml:"redirect_url"`
	StateTTLSeconds int    `toml:"state_ttl_seconds"`
	SuccessRedirect string `toml:"success_redirect"`
}

// Enabled возвращает true, если вход через Google настроен
func (c GoogleConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// CloudinaryConfig настройки загрузки аватаров
type CloudinaryConfig struct {
	CloudName string `toml:"cloud_name"`
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
	Folder    string `toml:"folder"`
	Timeout   int    `toml:"timeout"`

	// Не чаще одной загрузки аватара за upload_interval_sec после upload_burst подряд
	UploadIntervalSec int `toml:"upload_interval_sec"`
	UploadBurst       int `toml:"upload_burst"`
}

// Enabled возвращает true, если загрузка настроена
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// CalendarConfig настройки календаря доступности
type CalendarConfig struct {
	Timezone     string             `toml:"timezone"`
	BookedRanges []BookedRangeEntry `toml:"booked_ranges"`
}

// BookedRangeEntry занятый интервал [start, end)
type BookedRangeEntry struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// Location возвращает часовой пояс отеля
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Ranges разбирает и проверяет занятые интервалы
func (c CalendarConfig) Ranges() ([]domain.BookedRange, error) {
	if len(c.BookedRanges) == 0 {
		return domain.DefaultBookedRanges, nil
	}

	ranges := make([]domain.BookedRange, 0, len(c.BookedRanges))
	for i, entry := range c.BookedRanges {
		start, err := types.NewDateStringFromString(entry.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: calendar.booked_ranges[%d].start: %v", ErrInvalidConfig, i, err)
		}
		end, err := types.NewDateStringFromString(entry.End)
		if err != nil {
			return nil, fmt.Errorf("%w: calendar.booked_ranges[%d].end: %v", ErrInvalidConfig, i, err)
		}
		r := domain.BookedRange{Start: start, End: end}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: calendar.booked_ranges[%d]: %v", ErrInvalidConfig, i, err)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Load читает TOML файл, подставляет переменные окружения ${VAR}, применяет значения по умолчанию и проверяет конфигурацию
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(string(raw))
}

// Parse разбирает конфигурацию из строки
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(os.ExpandEnv(data), &cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	setDefault(&c.Redis.Address, "localhost:6379")

	setDefault(&c.Logs.Level, "info")

	setDefault(&c.Metrics.Path, "/metrics")
	setDefault(&c.Metrics.ServiceName, "hotel-booking-service")

	setDefault(&c.Auth.SessionTTLHours, domain.DefaultSessionTTLHours)
	setDefault(&c.Auth.BcryptCost, 10)
	setDefault(&c.Auth.RateLimitRequests, 20)
	setDefault(&c.Auth.RateLimitWindowSec, 60)
	setDefault(&c.Auth.Google.StateTTLSeconds, 600)
	setDefault(&c.Auth.Google.SuccessRedirect, "/")

	setDefault(&c.Cloudinary.Folder, "avatars")
	setDefault(&c.Cloudinary.Timeout, 30)
	setDefault(&c.Cloudinary.UploadIntervalSec, 60)
	setDefault(&c.Cloudinary.UploadBurst, 3)

	setDefault(&c.Calendar.Timezone, domain.DefaultCalendarTimezone)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if _, err := c.Server.TrustedProxyNets(); err != nil {
		return err
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("%w: auth.bcrypt_cost %d out of range", ErrInvalidConfig, c.Auth.BcryptCost)
	}
	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("%w: calendar.timezone: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Calendar.Ranges(); err != nil {
		return err
	}
	return nil
}
