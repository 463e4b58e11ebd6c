package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted by SHEET_STORE_DRIVER
const (
	StoreDriverGoogle = "google"
	StoreDriverXLSX   = "xlsx"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Sheet store
	SheetStoreDriver      string
	SheetID               string // Submission sheet (rows + recipient cells)
	EmailSheetID          string // Subscriber sheet
	GoogleCredentials     string // Service account JSON
	SheetsEndpoint        string // Optional API endpoint override
	XLSXStoreDir          string
	SubmissionAppendRange string
	RecipientCells        []string
	SubscriberAppendRange string
	// SMTP Configuration
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string // Defaults to the SMTP login
	SMTPFromName   string
	ContactEmailTo string
	BrandName      string
	// HTTP
	CORSAllowedOrigins []string
	// Upper bound for every store read/append and every email send
	ExternalCallTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development); production reads the process env only
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "5000"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		// Sheet store
		SheetStoreDriver:      strings.ToLower(getEnv("SHEET_STORE_DRIVER", StoreDriverGoogle)),
		SheetID:               getEnv("SHEET_ID", ""),
		EmailSheetID:          getEnv("EMAIL_SHEET_ID", ""),
		GoogleCredentials:     getEnv("GOOGLE_CREDENTIALS", ""),
		SheetsEndpoint:        getEnv("SHEETS_ENDPOINT", ""),
		XLSXStoreDir:          getEnv("XLSX_STORE_DIR", "./data"),
		SubmissionAppendRange: getEnv("SUBMISSION_APPEND_RANGE", "Sheet1!B2"),
		RecipientCells:        getEnvList("RECIPIENT_CELLS", []string{"Sheet1!A1", "Sheet1!A2", "Sheet1!A3"}),
		SubscriberAppendRange: getEnv("SUBSCRIBER_APPEND_RANGE", "Sheet1!A1"),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromName:   getEnv("SMTP_FROM_NAME", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		BrandName:      getEnv("BRAND_NAME", "our"),
		// HTTP
		CORSAllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		ExternalCallTimeout: getEnvDuration("EXTERNAL_CALL_TIMEOUT", 15*time.Second),
	}
	cfg.SMTPFromEmail = getEnv("SMTP_FROM_EMAIL", cfg.SMTPUsername)

	if cfg.SheetID == "" {
		log.Println("WARNING: SHEET_ID is missing. Form submissions will fail.")
	}
	if cfg.EmailSheetID == "" {
		log.Println("WARNING: EMAIL_SHEET_ID is missing. Subscriptions will fail.")
	}
	if cfg.SheetStoreDriver == StoreDriverGoogle && cfg.GoogleCredentials == "" {
		log.Println("WARNING: GOOGLE_CREDENTIALS not configured. Falling back to application default credentials.")
	}
	if cfg.ContactEmailTo == "" {
		log.Println("WARNING: CONTACT_EMAIL_TO not configured. Contact form messages cannot be delivered.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("10s") or a bare number of seconds
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
