package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Demo         Demo         `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Configured reports whether a database was pointed at. Without one the
// service runs on the in-memory demo stores.
func (d Database) Configured() bool {
	return d.URL != ""
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Demo pins the application date the reports are computed against and the
// seed credentials for the in-memory user store. The pinned date keeps every
// figure reproducible no matter when the service runs.
type Demo struct {
	CurrentDate     string    `mapstructure:"demo_current_date"`
	Date            time.Time `mapstructure:"-"`
	AdminUsername   string    `mapstructure:"demo_admin_username"`
	AdminPassword   string    `mapstructure:"demo_admin_password"`
	ManagerUsername string    `mapstructure:"demo_manager_username"`
	ManagerPassword string    `mapstructure:"demo_manager_password"`
	ViewerUsername  string    `mapstructure:"demo_viewer_username"`
	ViewerPassword  string    `mapstructure:"demo_viewer_password"`
}

type SnapshotSync struct {
	CronSchedule  string `mapstructure:"snapshot_sync_cron"`
	Enabled       bool   `mapstructure:"snapshot_sync_enabled"`
	RetentionDays int    `mapstructure:"snapshot_sync_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "") // empty keeps the demo stores
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "local-dev-secret") // ONLY LOCAL

	viper.SetDefault("DEMO_CURRENT_DATE", "2025-06-15")
	viper.SetDefault("DEMO_ADMIN_USERNAME", "admin")
	viper.SetDefault("DEMO_ADMIN_PASSWORD", "MDSdemo2025!")
	viper.SetDefault("DEMO_MANAGER_USERNAME", "officemgr")
	viper.SetDefault("DEMO_MANAGER_PASSWORD", "RunTheDesk2025!")
	viper.SetDefault("DEMO_VIEWER_USERNAME", "frontdesk")
	viper.SetDefault("DEMO_VIEWER_PASSWORD", "ViewOnly2025!")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 2 * * *") // every day at 2am
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SNAPSHOT_SYNC_RETENTION_DAYS", 400)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
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

	if config.Database.Configured() {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	date, err := time.Parse("2006-01-02", config.Demo.CurrentDate)
	if err != nil {
		return nil, fmt.Errorf("invalid DEMO_CURRENT_DATE %q: %w", config.Demo.CurrentDate, err)
	}
	config.Demo.Date = date

	return config, nil
}

// loadEnvFile loads a .env file from the usual local run locations.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve the working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Info("No .env file found, relying on process environment")
}
