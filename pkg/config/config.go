package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Log  LogConfig
	I18n I18nConfig
	Docs DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// LogConfig nivel del logger: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// I18nConfig idioma inicial de la interfaz (en, de, ru).
type I18nConfig struct {
	DefaultLanguage string
}

// DocsConfig ruta del swagger.json; si el archivo no existe no se monta /docs.
type DocsConfig struct {
	SwaggerPath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, LOG_LEVEL, DEFAULT_LANGUAGE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port, err := getInt(v, "HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "weinrechner"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: port,
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		I18n: I18nConfig{
			DefaultLanguage: getString(v, "DEFAULT_LANGUAGE", "en"),
		},
		Docs: DocsConfig{
			SwaggerPath: getString(v, "DOCS_SWAGGER_PATH", "./docs/swagger.json"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return 0, fmt.Errorf("config: %s: %w", key, err)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}
