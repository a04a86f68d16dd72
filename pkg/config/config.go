package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de los binarios (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig  // backend REST (cmd/api)
	Admin   AdminConfig // consola de administración (cmd/admin)
	DB      DBConfig
	Gateway GatewayConfig
	Docs    DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de persistencia del backend.
// Driver "postgres" (por defecto) o "sqlite". Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SQLitePath  string
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

// HTTPConfig configuración del servidor HTTP del backend.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AdminConfig configuración de la consola web.
type AdminConfig struct {
	Host          string
	Port          int
	SessionCookie string
	Locale        string        // etiqueta BCP 47 para formatear precios (pt-BR por defecto)
	SessionTTL    time.Duration // inactividad tras la que se descarta el espacio de trabajo de una sesión
}

// Addr devuelve la dirección de escucha (host:port).
func (c AdminConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GatewayConfig cliente REST que usan la consola y el CLI.
type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DocsConfig Swagger UI del backend. FilePath vacío desactiva /docs.
type DocsConfig struct {
	SwaggerFile string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_DRIVER, API_BASE_URL, ADMIN_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env; se ignora si no existe
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "cadastro-fnr"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Admin: AdminConfig{
			Host:          getString(v, "ADMIN_HOST", "0.0.0.0"),
			Port:          getInt(v, "ADMIN_PORT", 8090),
			SessionCookie: getString(v, "ADMIN_SESSION_COOKIE", "cadastro_sid"),
			Locale:        getString(v, "ADMIN_LOCALE", "pt-BR"),
			SessionTTL:    time.Duration(getInt(v, "ADMIN_SESSION_TTL_MINUTES", 60)) * time.Minute,
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "DB_DRIVER", "postgres")),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "cadastro"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			SQLitePath:  getString(v, "SQLITE_PATH", "cadastro.db"),
		},
		Gateway: GatewayConfig{
			BaseURL: strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:8080"), "/"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Docs: DocsConfig{
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.DB.Driver != "postgres" && cfg.DB.Driver != "sqlite" {
		return nil, fmt.Errorf("DB_DRIVER inválido: %q (postgres|sqlite)", cfg.DB.Driver)
	}
	if _, err := url.ParseRequestURI(cfg.Gateway.BaseURL); err != nil {
		return nil, fmt.Errorf("API_BASE_URL inválido: %w", err)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
