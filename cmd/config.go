package cmd

import "time"

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	DBTimeout             time.Duration
	JWTSecret             string
	JWTTTL                time.Duration
	RabbitMQURL           string
	RabbitMQOrderExchange string
	BacklogReportSchedule string
	LogLevel              string
}
