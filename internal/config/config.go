package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StoreDriverFile     = "file"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	API          API          `mapstructure:",squash"`
	Store        Store        `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Demo         Demo         `mapstructure:",squash"`
	CacheRefresh CacheRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// API aponta para o backend remoto do ferro-velho
type API struct {
	URL     string        `mapstructure:"api_url"`
	Timeout time.Duration `mapstructure:"api_timeout"`
}

type Store struct {
	Driver string `mapstructure:"store_driver"`
	Path   string `mapstructure:"store_path"`
	Prefix string `mapstructure:"store_prefix"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Demo é o par de credenciais aceito quando o login remoto falha
type Demo struct {
	Login    string `mapstructure:"demo_login"`
	Password string `mapstructure:"demo_password"`
}

type CacheRefresh struct {
	CronSchedule string `mapstructure:"cache_refresh_cron"`
	Enabled      bool   `mapstructure:"cache_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("API_URL", "http://localhost:8080")
	viper.SetDefault("API_TIMEOUT", "0s") // sem timeout por padrão

	viper.SetDefault("STORE_DRIVER", StoreDriverFile)
	viper.SetDefault("STORE_PATH", ".sucatabook/store.json")
	viper.SetDefault("STORE_PREFIX", "")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sucatabook?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DEMO_LOGIN", "admin")
	viper.SetDefault("DEMO_PASSWORD", "admin")

	viper.SetDefault("CACHE_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("CACHE_REFRESH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// VITE_API_URL é aceita como alias de API_URL
	if alias := os.Getenv("VITE_API_URL"); alias != "" && os.Getenv("API_URL") == "" {
		config.API.URL = alias
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() error {
	c.API.URL = strings.TrimRight(strings.TrimSpace(c.API.URL), "/")
	if c.API.URL == "" {
		c.API.URL = "http://localhost:8080"
	}

	switch c.Store.Driver {
	case StoreDriverFile, StoreDriverRedis, StoreDriverPostgres:
	default:
		return fmt.Errorf("driver de armazenamento local inválido: %q", c.Store.Driver)
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
