package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	CurrencyCode       string
	MaxRecommendations int
	DefaultUser        string
	SelfCheck          bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiEnv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid int env %s=%s, using default %d", key, v, def)
		return def
	}
	return n
}

func Load() Config {
	return Config{
		CurrencyCode:       getenv("CURRENCY_CODE", "KES"),
		MaxRecommendations: atoiEnv("MAX_RECOMMENDATIONS", 5),
		// Nota: en un sistema real el usuario llegaria del login
		DefaultUser: getenv("DEFAULT_USER", "User1"),
		SelfCheck:   getenv("SELF_CHECK", "0") == "1",
	}
}
