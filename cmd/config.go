package cmd

// Config carries the environment-supplied settings for the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	NatsClusterID string
	NatsClientID  string
	NatsURL       string
}
