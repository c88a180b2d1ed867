package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the application's configuration values.
type Config struct {
	AppName     string        `json:"appname"`
	AppEnv      string        `json:"appenv"`
	AppPort     uint16        `json:"appport"`
	GinMode     string        `json:"ginmode"`
	DBHost      string        `json:"dbhost"`
	DBPort      uint16        `json:"dbport"`
	DBName      string        `json:"dbname"`
	DBUSER      string        `json:"dbuser"`
	DBPass      string        `json:"dbpass"`
	SiteURLRoot string        `json:"site_url_root"`
	PageTTL     time.Duration `json:"page_ttl"`
	RateLimit   int           `json:"rate_limit"`
	RateWindow  time.Duration `json:"rate_window"`
	RedisAddr   string        `json:"redis_addr"`
	RedisPass   string        `json:"redis_pass"`
	RedisDB     int           `json:"redis_db"`
	GeoIPDBPath string        `json:"geoip_db_path"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
// A missing .env file is not an error; the process environment is used as-is.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}
		config = fromEnv()
	})
	return config
}

func fromEnv() *Config {
	appPort, _ := strconv.ParseUint(getEnv("APPPORT", "8000"), 10, 16)
	dbPort, _ := strconv.ParseUint(getEnv("DBPORT", "3306"), 10, 16)
	rateLimit, _ := strconv.Atoi(getEnv("RATE_LIMIT", "0"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return &Config{
		AppName:     getEnv("APPNAME", "Genotator"),
		AppEnv:      os.Getenv("APPENV"),
		AppPort:     uint16(appPort),
		GinMode:     getEnv("GINMODE", "release"),
		DBHost:      firstEnv("DBHOST", "ROUNDUP_MYSQL_SERVER"),
		DBPort:      uint16(dbPort),
		DBName:      firstEnv("DBNAME", "ROUNDUP_MYSQL_DB"),
		DBUSER:      firstEnv("DBUSER", "ROUNDUP_MYSQL_USER"),
		DBPass:      firstEnv("DBPASS", "ROUNDUP_MYSQL_PASSWORD"),
		SiteURLRoot: getEnv("SITE_URL_ROOT", "http://localhost:8000"),
		PageTTL:     parseDuration(os.Getenv("PAGE_CACHE_TTL"), 10*time.Minute),
		RateLimit:   rateLimit,
		RateWindow:  parseDuration(os.Getenv("RATE_WINDOW"), time.Minute),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		RedisDB:     redisDB,
		GeoIPDBPath: os.Getenv("GEOIP_DB_PATH"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// firstEnv returns the first non-empty value among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// parseDuration accepts Go durations ("90s") or plain seconds ("90").
func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}

// DSN builds the MySQL data source name from the config values.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4", c.DBUSER, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

// ConnectMySQL establishes a connection to a MySQL database using the configuration values.
// With APPENV=test it opens a shared in-memory SQLite database instead.
func ConnectMySQL() (*gorm.DB, error) {
	if os.Getenv("APPENV") == "test" {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}

	cfg := LoadConfig()
	level := logger.Warn
	if cfg.GinMode == "debug" {
		level = logger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql %s:%d/%s: %w", cfg.DBHost, cfg.DBPort, cfg.DBName, err)
	}

	return db, nil
}
