package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	FEL     FELConfig
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

// BackendConfig configuración del backend REST de facturación.
type BackendConfig struct {
	BaseURL         string // ej. https://api.deportes.example.com/api/v1
	APIKey          string // cabecera x-api-key; vacío = sin autenticación
	TimeoutSegundos int
}

// FELConfig configuración de la certificación electrónica y del emisor.
type FELConfig struct {
	RetrasoMs       int    // latencia del certificador simulado
	Serie           string // serie de las facturas nuevas
	IDClienteEmisor int64  // emisor fijo de esta instalación
	IDUsuario       int64  // usuario operador fijo (sin sesión de usuario)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, FEL_SERIE, etc.
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

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "deportes-facturador"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			BaseURL:         getString(v, "BACKEND_BASE_URL", "http://localhost:3000/api/v1"),
			APIKey:          getString(v, "BACKEND_API_KEY", ""),
			TimeoutSegundos: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
		FEL: FELConfig{
			RetrasoMs:       getInt(v, "FEL_DELAY_MS", 1200),
			Serie:           getString(v, "FEL_SERIE", "A"),
			IDClienteEmisor: int64(getInt(v, "FEL_ID_CLIENTE_EMISOR", 1)),
			IDUsuario:       int64(getInt(v, "FEL_ID_USUARIO", 1)),
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

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
