package config

import (
	"os"
)

type Config struct {
	ServerPort string
	GinMode    string

	LogLevel  string
	LogFormat string

	// AI provider
	AIProvider    string
	GoogleAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// MongoDB
	MongoURI        string
	MongoDBName     string
	MongoCollection string

	// rabbitMQ (optional; empty URL disables event publishing)
	RabbitURL   string
	RabbitQueue string
}

func Load() Config {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8000"
	}

	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = "debug"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "json"
	}

	// AI provider config
	aiProvider := os.Getenv("AI_PROVIDER")
	if aiProvider == "" {
		aiProvider = "gemini"
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = "gemini-2.0-flash"
	}

	openAIModel := os.Getenv("OPENAI_MODEL")
	if openAIModel == "" {
		openAIModel = "gpt-4o-mini"
	}

	// A missing Mongo URI is not fatal here; the store degrades and
	// /health reports it.
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		dbName = "social_replies"
	}
	collection := os.Getenv("MONGODB_COLLECTION_NAME")
	if collection == "" {
		collection = "replies"
	}

	rabbitQueue := os.Getenv("RABBIT_QUEUE")
	if rabbitQueue == "" {
		rabbitQueue = "reply_events"
	}

	return Config{
		ServerPort: port,
		GinMode:    mode,

		LogLevel:  logLevel,
		LogFormat: logFormat,

		AIProvider:    aiProvider,
		GoogleAPIKey:  os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:   geminiModel,
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   openAIModel,

		MongoURI:        os.Getenv("MONGODB_URI"),
		MongoDBName:     dbName,
		MongoCollection: collection,

		RabbitURL:   os.Getenv("RABBIT_URL"),
		RabbitQueue: rabbitQueue,
	}
}
