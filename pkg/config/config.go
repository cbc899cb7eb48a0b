package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Auth    AuthConfig
	Report  ReportConfig
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

// BackendConfig API de clientes a la que se delegan los datos.
type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

// AuthConfig configuración de tokens y cookie de sesión.
// Si Secret está vacío el token no se verifica, solo se lee su exp.
type AuthConfig struct {
	Secret     string
	CookieName string
}

// ReportConfig opciones de los reportes PDF.
type ReportConfig struct {
	UTCOffset time.Duration
	LogoPath  string // vacío = logo embebido
	Viewer    string // comando para previsualizar; vacío = el del sistema
	OutputDir string // vacío = carpeta de descargas XDG
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia ya poblada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "customer-portal"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			URL:     strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:8000"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Auth: AuthConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			CookieName: getString(v, "AUTH_COOKIE_NAME", "access_token"),
		},
		Report: ReportConfig{
			UTCOffset: time.Duration(getInt(v, "REPORT_UTC_OFFSET_MINUTES", 330)) * time.Minute,
			LogoPath:  getString(v, "REPORT_LOGO_PATH", ""),
			Viewer:    getString(v, "REPORT_VIEWER", ""),
			OutputDir: getString(v, "REPORT_OUTPUT_DIR", ""),
		},
	}

	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("config: BACKEND_URL vacío")
	}
	if cfg.Backend.Timeout <= 0 {
		return nil, fmt.Errorf("config: BACKEND_TIMEOUT_SECONDS debe ser positivo")
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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
