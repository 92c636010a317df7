package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	DB      DBConfig
	S3      S3Config
	Log     LogConfig
	OCR     OCRConfig
	Matcher MatcherConfig
}

// DBConfig holds PostgreSQL connection settings for the applicant store.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds settings for the bucket storing raw applicant documents.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
	JSON  bool `mapstructure:"json"`
}

// OCREngineConfig holds settings for a single provider recognition engine.
type OCREngineConfig struct {
	Engine            int  `mapstructure:"engine"`
	DetectOrientation bool `mapstructure:"detect_orientation"`
	Scale             bool `mapstructure:"scale"`
	TableMode         bool `mapstructure:"table_mode"`
}

// OCRConfig holds the external OCR provider settings with a primary and a
// secondary recognition engine for the PDF fallback path.
type OCRConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	Endpoint  string        `mapstructure:"endpoint"`
	Language  string        `mapstructure:"language"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Primary   OCREngineConfig
	Secondary OCREngineConfig
}

// MatcherConfig holds duplicate screening settings.
type MatcherConfig struct {
	Threshold float64 `mapstructure:"threshold"`
}

// Load reads configuration from file (optional), environment, and defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("recruitos")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/recruitos")

	// Missing config file is fine; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	setDefaults(v)
	bindEnv(v)

	cfg := &Config{}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
	}
	cfg.Log = LogConfig{
		Debug: v.GetBool("log.debug"),
		JSON:  v.GetBool("log.json"),
	}
	cfg.OCR = OCRConfig{
		APIKey:   v.GetString("ocr.api_key"),
		Endpoint: v.GetString("ocr.endpoint"),
		Language: v.GetString("ocr.language"),
		Timeout:  v.GetDuration("ocr.timeout"),
		Primary: OCREngineConfig{
			Engine:            v.GetInt("ocr.primary.engine"),
			DetectOrientation: v.GetBool("ocr.primary.detect_orientation"),
			Scale:             v.GetBool("ocr.primary.scale"),
			TableMode:         v.GetBool("ocr.primary.table_mode"),
		},
		Secondary: OCREngineConfig{
			Engine:            v.GetInt("ocr.secondary.engine"),
			DetectOrientation: v.GetBool("ocr.secondary.detect_orientation"),
			Scale:             v.GetBool("ocr.secondary.scale"),
			TableMode:         v.GetBool("ocr.secondary.table_mode"),
		},
	}
	cfg.Matcher = MatcherConfig{
		Threshold: v.GetFloat64("matcher.threshold"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "recruitos")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "recruitos")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "recruitos-resumes")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)

	// Log defaults
	v.SetDefault("log.debug", false)
	v.SetDefault("log.json", false)

	// OCR defaults: engine 2 handles orientation and tables, engine 1 is the
	// simpler fallback.
	v.SetDefault("ocr.api_key", "")
	v.SetDefault("ocr.endpoint", "https://api.ocr.space/parse/image")
	v.SetDefault("ocr.language", "eng")
	v.SetDefault("ocr.timeout", 60*time.Second)
	v.SetDefault("ocr.primary.engine", 2)
	v.SetDefault("ocr.primary.detect_orientation", true)
	v.SetDefault("ocr.primary.scale", true)
	v.SetDefault("ocr.primary.table_mode", true)
	v.SetDefault("ocr.secondary.engine", 1)
	v.SetDefault("ocr.secondary.detect_orientation", true)
	v.SetDefault("ocr.secondary.scale", true)
	v.SetDefault("ocr.secondary.table_mode", false)

	// Matcher defaults
	v.SetDefault("matcher.threshold", 0.85)
}

func bindEnv(v *viper.Viper) {
	envBindings := map[string]string{
		"db.host":                          "RECRUITOS_DB_HOST",
		"db.port":                          "RECRUITOS_DB_PORT",
		"db.user":                          "RECRUITOS_DB_USER",
		"db.password":                      "RECRUITOS_DB_PASSWORD",
		"db.name":                          "RECRUITOS_DB_NAME",
		"db.sslmode":                       "RECRUITOS_DB_SSLMODE",
		"db.max_open":                      "RECRUITOS_DB_MAX_OPEN",
		"db.max_idle":                      "RECRUITOS_DB_MAX_IDLE",
		"s3.region":                        "RECRUITOS_S3_REGION",
		"s3.bucket":                        "RECRUITOS_S3_BUCKET",
		"s3.endpoint":                      "RECRUITOS_S3_ENDPOINT",
		"s3.access_key":                    "RECRUITOS_S3_ACCESS_KEY",
		"s3.secret_key":                    "RECRUITOS_S3_SECRET_KEY",
		"s3.max_file_size_mb":              "RECRUITOS_S3_MAX_FILE_SIZE_MB",
		"log.debug":                        "RECRUITOS_LOG_DEBUG",
		"log.json":                         "RECRUITOS_LOG_JSON",
		"ocr.api_key":                      "RECRUITOS_OCR_API_KEY",
		"ocr.endpoint":                     "RECRUITOS_OCR_ENDPOINT",
		"ocr.language":                     "RECRUITOS_OCR_LANGUAGE",
		"ocr.timeout":                      "RECRUITOS_OCR_TIMEOUT",
		"ocr.primary.engine":               "RECRUITOS_OCR_PRIMARY_ENGINE",
		"ocr.primary.detect_orientation":   "RECRUITOS_OCR_PRIMARY_DETECT_ORIENTATION",
		"ocr.primary.scale":                "RECRUITOS_OCR_PRIMARY_SCALE",
		"ocr.primary.table_mode":           "RECRUITOS_OCR_PRIMARY_TABLE_MODE",
		"ocr.secondary.engine":             "RECRUITOS_OCR_SECONDARY_ENGINE",
		"ocr.secondary.detect_orientation": "RECRUITOS_OCR_SECONDARY_DETECT_ORIENTATION",
		"ocr.secondary.scale":              "RECRUITOS_OCR_SECONDARY_SCALE",
		"ocr.secondary.table_mode":         "RECRUITOS_OCR_SECONDARY_TABLE_MODE",
		"matcher.threshold":                "RECRUITOS_MATCHER_THRESHOLD",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
}
