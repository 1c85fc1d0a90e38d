package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	GinMode       string
	MongoURI      string
	MongoDatabase string

	RabbitMQURI      string
	RabbitMQExchange string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CatalogTTL    time.Duration

	JWTSecret string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	QuestionsPerRequest int
	QueryTimeout        time.Duration
	SelectionStrategy   string

	// Subject scoping for the sampling API, keyed by subject name.
	SubjectIDs map[string]string
}

var AppConfig *Config

// Load reads .env (if present) and builds the process configuration.
// MONGODB_URI is the only hard requirement; startup aborts without it.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI is required")
	}

	AppConfig = &Config{
		Port:          getEnvOrDefault("PORT", "3000"),
		GinMode:       getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:      mongoURI,
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "examprep"),

		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PWD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CatalogTTL:    time.Duration(getEnvInt("CATALOG_CACHE_TTL_SECONDS", 300)) * time.Second,

		JWTSecret: os.Getenv("JWT_SECRET"),

		LLMBaseURL: getEnvOrDefault("LLM_BASE_URL", "http://localhost:11434/v1"),
		LLMAPIKey:  os.Getenv("LLM_API_KEY"),
		LLMModel:   getEnvOrDefault("LLM_MODEL", "qwen3:1.7b"),

		QuestionsPerRequest: getEnvInt("QUESTIONS_PER_REQUEST", 25),
		QueryTimeout:        time.Duration(getEnvInt("QUERY_TIMEOUT_MS", 15000)) * time.Millisecond,
		SelectionStrategy:   getEnvOrDefault("SELECTION_STRATEGY", "random"),

		SubjectIDs: map[string]string{
			"physics":     os.Getenv("SUBJECT_ID_PHYSICS"),
			"chemistry":   os.Getenv("SUBJECT_ID_CHEMISTRY"),
			"mathematics": os.Getenv("SUBJECT_ID_MATHEMATICS"),
		},
	}
	return AppConfig
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
