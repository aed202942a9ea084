package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Backends soportados por el libro de movimientos.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Ledger   LedgerConfig
	DB       DBConfig
	SQLite   SQLiteConfig
	Forecast ForecastConfig
	Alerts   AlertsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LedgerConfig dónde vive el libro y de dónde se carga el catálogo semilla.
type LedgerConfig struct {
	Backend  string // memory | postgres | sqlite
	SeedFile string // YAML/JSON con catálogo, residentes, documentos y agenda (opcional)
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// SQLiteConfig ruta del archivo SQLite (acepta DSN "file:...").
type SQLiteConfig struct {
	Path string
}

// ForecastConfig ventana de consumo y umbrales de urgencia (días).
type ForecastConfig struct {
	WindowDays   int
	CriticalDays int
	WarningDays  int
}

// AlertsConfig anticipación de los avisos de vencimiento.
type AlertsConfig struct {
	ExpiryHorizonDays int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LEDGER_BACKEND, FORECAST_WINDOW_DAYS, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de Viper ya cargada (útil en tests).
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "residencia-inventario"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Ledger: LedgerConfig{
			Backend:  strings.ToLower(getString(v, "LEDGER_BACKEND", BackendMemory)),
			SeedFile: getString(v, "SEED_FILE", ""),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "residencia"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		SQLite: SQLiteConfig{
			Path: getString(v, "SQLITE_PATH", "file:inventario.db"),
		},
		Forecast: ForecastConfig{
			WindowDays:   getInt(v, "FORECAST_WINDOW_DAYS", 30),
			CriticalDays: getInt(v, "FORECAST_CRITICAL_DAYS", 3),
			WarningDays:  getInt(v, "FORECAST_WARNING_DAYS", 7),
		},
		Alerts: AlertsConfig{
			ExpiryHorizonDays: getInt(v, "ALERTS_EXPIRY_HORIZON_DAYS", 30),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica valores que el motor no puede corregir por sí mismo.
func (c *Config) Validate() error {
	switch c.Ledger.Backend {
	case BackendMemory, BackendPostgres, BackendSQLite:
	default:
		return fmt.Errorf("config: LEDGER_BACKEND %q no soportado", c.Ledger.Backend)
	}
	f := c.Forecast
	if f.WindowDays <= 0 {
		return fmt.Errorf("config: FORECAST_WINDOW_DAYS debe ser positivo (%d)", f.WindowDays)
	}
	if f.CriticalDays < 0 || f.WarningDays < 0 || f.CriticalDays > f.WarningDays {
		return fmt.Errorf("config: umbrales inválidos critical=%d warning=%d", f.CriticalDays, f.WarningDays)
	}
	if c.Alerts.ExpiryHorizonDays < 0 {
		return fmt.Errorf("config: ALERTS_EXPIRY_HORIZON_DAYS no puede ser negativo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}
