package config

import (
	"os"
	"strings"
)

type Config struct {
	ProjectID                    string
	Port                         string
	AllowedOrigins               []string
	StorageBucket                string
	SignedURLServiceAccountEmail string

	// Reserved super-admin identity, provisioned by cmd/seed-admin.
	SuperAdminEmail string

	// Magen bot-defense verification endpoint (advisory only).
	MagenURL       string
	MagenSecretKey string
}

func Load() Config {
	projectID := getenv("FIREBASE_PROJECT_ID", "")
	if projectID == "" {
		projectID = getenv("GOOGLE_CLOUD_PROJECT", "")
	}

	port := getenv("PORT", "8080")
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")
	storageBucket := getenv("FIREBASE_STORAGE_BUCKET", "")
	if storageBucket == "" && projectID != "" {
		storageBucket = projectID + ".appspot.com"
	}
	signedURLServiceAccountEmail := getenv("SIGNED_URL_SERVICE_ACCOUNT_EMAIL", "")
	superAdminEmail := getenv("SUPER_ADMIN_EMAIL", "")
	magenURL := getenv("MAGEN_VERIFY_URL", "")
	magenSecretKey := getenv("MAGEN_SECRET_KEY", "")

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
		AllowedOrigins:               allowed,
		StorageBucket:                storageBucket,
		SignedURLServiceAccountEmail: signedURLServiceAccountEmail,
		SuperAdminEmail:              superAdminEmail,
		MagenURL:                     magenURL,
		MagenSecretKey:               magenSecretKey,
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
