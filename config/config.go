package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/Alejomesa58/encuestas-poli/models"
	"github.com/Alejomesa58/encuestas-poli/utils"
)

type Config struct {
	Port string
	// DataPath es el archivo local donde vive el medio clave/valor.
	DataPath string
	// BaseURL del formulario público, usada en los enlaces compartibles.
	BaseURL        string
	AllowedOrigins []string
	// Seed reemplaza las encuestas semilla por defecto cuando el operador
	// define SEED_FILE (YAML). Nil = semilla incorporada.
	Seed []models.SeedSurvey

	Logging utils.LoggerConfig
}

// Load lee .env si existe y arma la configuración desde el entorno.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:     getEnv("PORT", "8080"),
		DataPath: getEnv("DATA_PATH", "data/encuestas.json"),
		BaseURL:  getEnv("BASE_URL", "http://localhost:8080/responder"),
		Logging: utils.LoggerConfig{
			LogLevel:   getEnv("LOG_LEVEL", "info"),
			LogToFile:  getEnvBool("LOG_TO_FILE", false),
			Filename:   getEnv("LOG_FILENAME", "logs/encuestas.log"),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 50),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 30),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			IncludeSrc: getEnvBool("LOG_INCLUDE_SRC", false),
		},
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if seedFile := os.Getenv("SEED_FILE"); seedFile != "" {
		seed, err := loadSeedFile(seedFile)
		if err != nil {
			return Config{}, err
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

func loadSeedFile(path string) ([]models.SeedSurvey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer SEED_FILE: %w", err)
	}
	var seed []models.SeedSurvey
	if err := yaml.UnmarshalStrict(raw, &seed); err != nil {
		return nil, fmt.Errorf("parsear SEED_FILE: %w", err)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("SEED_FILE %s no define encuestas", path)
	}
	return seed, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
