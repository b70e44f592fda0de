package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID                    string
	Port                         string
	Env                          string
	AllowedOrigins               []string
	StorageBucket                string
	SignedURLServiceAccountEmail string
	AutoCloseConfigPath          string
}

func Load() Config {
	// .env is optional; deployed environments use real env vars.
	_ = godotenv.Load()

	projectID := getenv("FIREBASE_PROJECT_ID", "")
	if projectID == "" {
		projectID = getenv("GOOGLE_CLOUD_PROJECT", "")
	}

	port := getenv("PORT", "8080")
	env := getenv("APP_ENV", "development")
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")
	storageBucket := getenv("FIREBASE_STORAGE_BUCKET", "")
	if storageBucket == "" && projectID != "" {
		storageBucket = projectID + ".appspot.com"
	}
	signedURLServiceAccountEmail := getenv("SIGNED_URL_SERVICE_ACCOUNT_EMAIL", "")
	autoClosePath := getenv("AUTOCLOSE_CONFIG_PATH", "autoclose.json")

	allowed := []string{}
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed = append(allowed, o)
		}
	}

	return Config{
		ProjectID:                    projectID,
		Port:                         port,
		Env:                          env,
		AllowedOrigins:               allowed,
		StorageBucket:                storageBucket,
		SignedURLServiceAccountEmail: signedURLServiceAccountEmail,
		AutoCloseConfigPath:          autoClosePath,
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
