package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ITECH-Group8/WellLog/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string

	AI AIConfig

	// Blob storage: S3 is used when a bucket is configured, the local
	// media directory otherwise (and as the fallback on S3 failures).
	S3Region     string
	S3Bucket     string
	S3BaseURL    string // public base, e.g. a CloudFront distribution
	MediaDir     string
	MediaBaseURL string

	SESEmail string

	LogLevel string
	LogFile  string
}

type AIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		Port:         envOr("PORT", "8080"),
		DBHost:       os.Getenv("DB_HOST"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBPort:       envOr("DB_PORT", "5432"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		S3Region:     envOr("S3_REGION", os.Getenv("AWS_REGION")),
		S3Bucket:     os.Getenv("S3_BUCKET"),
		S3BaseURL:    os.Getenv("CLOUDFRONT_URL"),
		MediaDir:     envOr("MEDIA_DIR", "media"),
		MediaBaseURL: envOr("MEDIA_BASE_URL", "/media"),
		SESEmail:     os.Getenv("SES_EMAIL"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		LogFile:      os.Getenv("LOG_FILE"),
	}

	c.AI = AIConfig{
		BaseURL: envOr("AI_BASE_URL", "https://api.deepseek.com"),
		APIKey:  os.Getenv("AI_API_KEY"),
		Model:   envOr("AI_MODEL", "deepseek-chat"),
		Timeout: 30 * time.Second,
	}
	if v := os.Getenv("AI_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.AI.Timeout = time.Duration(n) * time.Second
		}
	}

	return c
}

// OpenDB connects to Postgres and migrates the schema.
func (c *Config) OpenDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.StepsRecord{},
		&models.SleepRecord{},
		&models.DietRecord{},
		&models.RunningRecord{},
		&models.TrainingRecord{},
		&models.MoodRecord{},
		&models.WeightRecord{},
		&models.HealthGoal{},
		&models.HealthAdvice{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
