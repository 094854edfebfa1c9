package config

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env  string `mapstructure:"env"`
		Host string `mapstructure:"host"`
		Port string `mapstructure:"port"`
	} `mapstructure:"app"`
	DB struct {
		DSN      string `mapstructure:"dsn"`
		MaxConns int32  `mapstructure:"max_conns"`
	} `mapstructure:"db"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
}

func (c Config) Addr() string {
	return c.App.Host + ":" + c.App.Port
}

// LoadConfig reads .env, then config.yaml from the given paths (default "."), then the
// environment. Environment wins.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if err = godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use environment.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read environment only. Error: %v", err)
	}

	v.SetDefault("app.env", "development")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", "3000")
	v.SetDefault("db.max_conns", 10)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.host", "APP_HOST")
	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("db.dsn", "DATABASE_URL")
	v.BindEnv("db.max_conns", "DB_MAX_CONNS")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("jaeger.otlp_endpoint", "OTLP_ENDPOINT")

	if err = v.Unmarshal(&cfg); err != nil {
		return
	}

	if cfg.DB.DSN == "" {
		err = errors.New("DATABASE_URL is not set")
	}
	return
}
