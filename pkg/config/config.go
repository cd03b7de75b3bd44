package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	NATS     NATSConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Log      LogConfig
	Storage  StorageConfig
	Cleanup  CleanupConfig
}

type AppConfig struct {
	Name     string
	Port     string
	Env      string
	BaseURL  string // public URL ที่ mobile client ใช้เรียก (เช่น http://192.168.43.179:3333)
	Timezone string // time zone สำหรับ day-boundary ของ filter date
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	LogLevel string // silent, error, warn, info (gorm logger)
}

// NATSConfig สำหรับ publish domain events ผ่าน JetStream
type NATSConfig struct {
	URL    string // nats://localhost:4222
	Stream string
}

// RedisConfig สำหรับ cache รายการ meetup หน้า public
type RedisConfig struct {
	URL     string // redis://localhost:6379
	ListTTL time.Duration
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type StorageConfig struct {
	Type          string // local, s3
	BasePath      string // สำหรับ local: ./uploads
	BaseURL       string // URL สำหรับเข้าถึงไฟล์ (เช่น http://localhost:3333/files)
	MaxUploadSize int64  // bytes

	// S3-Compatible Storage (MinIO / Cloudflare R2)
	S3 S3Config
}

type S3Config struct {
	Endpoint  string // minio:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string
}

// CleanupConfig controls the orphan banner cleanup job.
type CleanupConfig struct {
	Enabled     bool
	Cron        string
	OrphanAfter time.Duration
}

func LoadConfig() (*Config, error) {
	// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	maxUploadSize, _ := strconv.ParseInt(getEnv("STORAGE_MAX_UPLOAD_SIZE", "5242880"), 10, 64) // 5MB default
	s3UseSSL := getEnv("S3_USE_SSL", "false") == "true"

	port := getEnv("APP_PORT", "3333")

	config := &Config{
		App: AppConfig{
			Name:     getEnv("APP_NAME", "Meetapp"),
			Port:     port,
			Env:      getEnv("APP_ENV", "development"),
			BaseURL:  getEnv("APP_URL", "http://localhost:"+port),
			Timezone: getEnv("APP_TIMEZONE", "Local"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "meetapp"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		NATS: NATSConfig{
			URL:    getEnv("NATS_URL", "nats://localhost:4222"),
			Stream: getEnv("NATS_STREAM", "MEETAPP"),
		},
		Redis: RedisConfig{
			URL:     getEnv("REDIS_URL", ""),
			ListTTL: getDuration("REDIS_LIST_TTL", time.Minute),
		},
		JWT: JWTConfig{
			Secret:    getEnv("JWT_SECRET", "your-secret-key"),
			ExpiresIn: getDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Storage: StorageConfig{
			Type:          getEnv("STORAGE_TYPE", "local"),
			BasePath:      getEnv("STORAGE_BASE_PATH", "./tmp/uploads"),
			BaseURL:       getEnv("STORAGE_BASE_URL", "http://localhost:"+port+"/files"),
			MaxUploadSize: maxUploadSize,
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "meetapp"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", "us-east-1"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Cleanup: CleanupConfig{
			Enabled:     getEnv("CLEANUP_ENABLED", "true") == "true",
			Cron:        getEnv("CLEANUP_CRON", "0 3 * * *"),
			OrphanAfter: getDuration("CLEANUP_ORPHAN_MAX_AGE", 24*time.Hour),
		},
	}

	return config, nil
}

// Location resolves App.Timezone, falling back to the process local zone.
func (c *Config) Location() *time.Location {
	if c.App.Timezone == "" || c.App.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDuration อ่านค่า duration เช่น "60s", "168h"
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
