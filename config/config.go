package config

import "os"

// Config carries every runtime setting. Loaded once in main and injected
// everywhere; no package reads the environment on its own.
type Config struct {
	Port    string
	DataDir string

	// Remote catalog API origin.
	APIURL string

	// WhatsApp number orders are sent to.
	WhatsAppNumber string

	// Firebase identity provider.
	FirebaseProjectID       string
	FirebaseAPIKey          string
	FirebaseCredentialsJSON string

	// Identity Toolkit endpoints, overridable for tests.
	IdentityToolkitURL string
	SecureTokenURL     string

	AllowOrigins []string
	LogFormat    string
}

func Load() Config {
	return Config{
		Port:                    getenv("PORT", "8080"),
		DataDir:                 getenv("DATA_DIR", "./data"),
		APIURL:                  getenv("API_URL", "http://localhost:5000"),
		WhatsAppNumber:          getenv("WHATSAPP_NUMBER", "9048376099"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseAPIKey:          os.Getenv("FIREBASE_API_KEY"),
		FirebaseCredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS_JSON"),
		IdentityToolkitURL:      getenv("IDENTITY_TOOLKIT_URL", "https://identitytoolkit.googleapis.com/v1"),
		SecureTokenURL:          getenv("SECURE_TOKEN_URL", "https://securetoken.googleapis.com/v1"),
		AllowOrigins:            []string{getenv("ALLOW_ORIGIN", "*")},
		LogFormat:               getenv("LOG_FORMAT", "console"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
