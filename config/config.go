package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Supabase (hosted auth + database)
	SupabaseUrl        string
	SupabaseServiceKey string // privileged key, bypasses RLS, server-side only
	SupabaseAnonKey    string // public key, used for password sign-in
	SupabaseJWTSecret  string
	// Gemini (generative API)
	GeminiAPIKey string
	GeminiModel  string
	// Local state
	ReflectionTimeFile string
	// Static assets
	WebDir string
	// Misc
	FrontendURL            string
	UpstreamTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		// Trim trailing slash to avoid double slashes when building URLs
		SupabaseUrl:        strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseAnonKey:    getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseJWTSecret:  getEnv("SUPABASE_JWT_SECRET", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),

		ReflectionTimeFile: getEnv("REFLECTION_TIME_FILE", "rtime.json"),
		WebDir:             getEnv("WEB_DIR", "web"),

		FrontendURL:            strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:8080"), "/"),
		UpstreamTimeoutSeconds: getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 15),
	}

	// Keys are only required at first use, but warn early so misconfiguration
	// is visible at startup rather than on the first failing request.
	if cfg.SupabaseUrl == "" {
		log.Println("WARNING: SUPABASE_URL is missing. Auth and database calls will fail.")
	}
	if cfg.SupabaseServiceKey == "" {
		log.Println("WARNING: SUPABASE_SERVICE_ROLE_KEY is missing. Database writes will fail.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY is missing. Meal generation will fail.")
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
