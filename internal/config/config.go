package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverBolt     = "bolt"
	StoreDriverPostgres = "postgres"

	UploadDriverNone  = "none"
	UploadDriverImgBB = "imgbb"
	UploadDriverGCS   = "gcs"
)

type Config struct {
	Port     string
	LogLevel string

	StoreDriver string
	BoltPath    string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	OperatorWorkers int

	UploadDriver     string
	ImgBBAPIKey      string
	ImgBBEndpoint    string
	GCSBucket        string
	GCSPublicBaseURL string

	// ReconcileEntryEdits makes entry edits move the balance effect from the
	// old amount/account to the new one. Off by default: edits only replace fields.
	ReconcileEntryEdits bool

	CORSAllowedOrigins []string
}

// ProcessEnvironmentVariables loads .env (when present) and the process
// environment over the defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:               "9446",
		LogLevel:           "info",
		StoreDriver:        StoreDriverBolt,
		BoltPath:           "budget.db",
		PostgresAddress:    "localhost",
		PostgresPort:       "5433",
		PostgresDB:         "postgres",
		PostgresUsername:   "postgres",
		PostgresPassword:   "testpassword",
		OperatorWorkers:    4,
		UploadDriver:       UploadDriverNone,
		ImgBBEndpoint:      "https://api.imgbb.com/1/upload",
		GCSPublicBaseURL:   "https://storage.googleapis.com",
		CORSAllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
	}

	setString(&env.Port, "PORT")
	setString(&env.LogLevel, "LOG_LEVEL")
	setString(&env.StoreDriver, "STORE_DRIVER")
	setString(&env.BoltPath, "BOLT_PATH")
	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.UploadDriver, "UPLOAD_DRIVER")
	setString(&env.ImgBBAPIKey, "IMGBB_API_KEY")
	setString(&env.ImgBBEndpoint, "IMGBB_ENDPOINT")
	setString(&env.GCSBucket, "GCS_BUCKET")
	setString(&env.GCSPublicBaseURL, "GCS_PUBLIC_BASE_URL")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); len(origins) != 0 {
		env.CORSAllowedOrigins = splitList(origins)
	}

	if workers := os.Getenv("OPERATOR_WORKERS"); len(workers) != 0 {
		n, err := strconv.Atoi(workers)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q", workers)
		}
		env.OperatorWorkers = n
	}

	if reconcile := os.Getenv("RECONCILE_ENTRY_EDITS"); len(reconcile) != 0 {
		b, err := strconv.ParseBool(reconcile)
		if err != nil {
			return nil, fmt.Errorf("invalid RECONCILE_ENTRY_EDITS: %w", err)
		}
		env.ReconcileEntryEdits = b
	}

	if err := env.validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// PostgresURL is the lib/pq connection string.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverBolt, StoreDriverPostgres:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.UploadDriver {
	case UploadDriverNone:
	case UploadDriverImgBB:
		if c.ImgBBAPIKey == "" {
			return fmt.Errorf("IMGBB_API_KEY is required when UPLOAD_DRIVER=%s", UploadDriverImgBB)
		}
	case UploadDriverGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when UPLOAD_DRIVER=%s", UploadDriverGCS)
		}
	default:
		return fmt.Errorf("unknown UPLOAD_DRIVER %q", c.UploadDriver)
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
