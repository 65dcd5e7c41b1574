package cmd

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	RegistryBaseURL string
	EnvelopeSecret  string
	RouteToken      string
	SessionTTL      string
}
