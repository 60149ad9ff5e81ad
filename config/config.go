package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Catalog source kinds
const (
	SourceDocument = "document"
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
	SourceDrive    = "drive"
)

// Config holds the application configuration
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Catalog CatalogConfig
	DB      DBConfig
	Contact ContactConfig
	Export  ExportConfig
}

type ServerConfig struct {
	Env       string
	Port      string
	BaseURL   string
	StaticDir string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	Development       bool
	DisableCaller     bool
	DisableStacktrace bool
}

type CatalogConfig struct {
	Source          string
	Path            string // local path or http(s) URL of the products document
	XLSXPath        string
	DriveFileID     string
	CredentialsPath string
}

type DBConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type ContactConfig struct {
	BaseURL string
	Phone   string
}

type ExportConfig struct {
	ChromePath     string
	TimeoutSeconds int
}

// Load reads the configuration from environment variables.
// .env loading is done by the caller before Load.
func Load() (*Config, error) {
	env := getEnv("ENV", "development")
	port := strings.TrimPrefix(getEnv("PORT", "8080"), ":")

	cfg := &Config{
		Server: ServerConfig{
			Env:       env,
			Port:      port,
			BaseURL:   strings.TrimRight(getEnv("BASE_URL", "http://localhost:"+port), "/"),
			StaticDir: getEnv("STATIC_DIR", "static"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			Development:       env != "production",
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Catalog: CatalogConfig{
			Source:          strings.ToLower(getEnv("CATALOG_SOURCE", SourceDocument)),
			Path:            getEnv("CATALOG_PATH", "products.json"),
			XLSXPath:        getEnv("CATALOG_XLSX_PATH", ""),
			DriveFileID:     getEnv("CATALOG_DRIVE_FILE_ID", ""),
			CredentialsPath: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		DB: DBConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Contact: ContactConfig{
			BaseURL: strings.TrimRight(getEnv("CONTACT_BASE_URL", "https://wa.me"), "/"),
			Phone:   getEnv("CONTACT_PHONE", "1234567890"),
		},
		Export: ExportConfig{
			ChromePath:     getEnv("CHROME_PATH", ""),
			TimeoutSeconds: getEnvInt("EXPORT_TIMEOUT_SECONDS", 30),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected catalog source has what it needs
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceDocument:
		if c.Catalog.Path == "" {
			return fmt.Errorf("CATALOG_PATH must be set for the %s source", SourceDocument)
		}
	case SourceXLSX:
		if c.Catalog.XLSXPath == "" {
			return fmt.Errorf("CATALOG_XLSX_PATH must be set for the %s source", SourceXLSX)
		}
	case SourcePostgres:
		if c.DB.URL == "" && (c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "") {
			return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
		}
	case SourceDrive:
		if c.Catalog.DriveFileID == "" {
			return fmt.Errorf("CATALOG_DRIVE_FILE_ID must be set for the %s source", SourceDrive)
		}
		if c.Catalog.CredentialsPath == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q (valid: document, xlsx, postgres, drive)", c.Catalog.Source)
	}

	if c.Contact.Phone == "" {
		return fmt.Errorf("CONTACT_PHONE must not be empty")
	}
	if c.Export.TimeoutSeconds <= 0 {
		return fmt.Errorf("EXPORT_TIMEOUT_SECONDS must be positive, got %d", c.Export.TimeoutSeconds)
	}
	return nil
}

// DSN returns the postgres connection string
func (d DBConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Addr returns the HTTP listen address
func (s ServerConfig) Addr() string {
	return "0.0.0.0:" + s.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
