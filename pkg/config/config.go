package config

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Store StoreConfig
	Log   LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StoreConfig datos de la tienda y parámetros de venta.
type StoreConfig struct {
	Name        string          // nombre impreso en recibos
	Cashier     string          // identificador del cajero por defecto
	TaxRate     decimal.Decimal // tasa de impuesto aplicada en ComputeTotals (0.08 = 8%)
	ReceiptsDir string          // directorio de salida para recibos PDF
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_NAME, POS_TAX_RATE, etc.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	taxRate, err := decimal.NewFromString(getString(v, "POS_TAX_RATE", "0.08"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "pos-tienda"),
		},
		Store: StoreConfig{
			Name:        getString(v, "STORE_NAME", "Tienda de Conveniencia"),
			Cashier:     getString(v, "STORE_CASHIER", "CAJA-01"),
			TaxRate:     taxRate,
			ReceiptsDir: getString(v, "RECEIPTS_DIR", "./recibos"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
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
