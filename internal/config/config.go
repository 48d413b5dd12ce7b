package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings concentra a configuração lida do ambiente.
// A chave da OpenAI é opcional: sem ela a geração cai no gerador local.
type Settings struct {
	Port              string
	DBURL             string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAITemperature float64
	CORSOrigins       []string
}

func LoadSettings() *Settings {
	temperature := 0.7
	if raw := os.Getenv("OPENAI_TEMPERATURE"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			temperature = parsed
		}
	}

	origins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Settings{
		Port:              getEnv("PORT", "8080"),
		DBURL:             os.Getenv("DB_URL"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITemperature: temperature,
		CORSOrigins:       origins,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
