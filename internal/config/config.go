package config

import "os"

type Config struct {
	MongoURI       string
	MongoDB        string
	RedisAddr      string
	RabbitURI      string
	RabbitExchange string
	HTTPPort       string
	JWTSecret      string
	HRPassword     string
}

func Load() *Config {
	return &Config{
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDB:        getEnv("MONGO_DB", "talentflow"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RabbitURI:      getEnv("RABBITMQ_URI", ""),
		RabbitExchange: getEnv("RABBITMQ_EXCHANGE", ""),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
		HRPassword:     getEnv("HR_PASSWORD", "admin123"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
