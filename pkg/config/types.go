package config

// Default server settings. These are the service's fixed constants: a
// daemon started with no config file and no flags behaves exactly like
// this.
const (
	DefaultGRPCAddr      = ":50052"
	DefaultHTTPAddr      = ":8081"
	DefaultLogLevel      = "info"
	DefaultMaxConcurrent = 10
)

// Config represents the optimizer daemon configuration
type Config struct {
	// GRPCAddr is the gRPC listen address.
	GRPCAddr string `yaml:"grpc_addr"`
	// HTTPAddr is the HTTP gateway listen address.
	HTTPAddr string `yaml:"http_addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// MaxConcurrent is the worker-pool capacity shared by both servers.
	MaxConcurrent int `yaml:"max_concurrent"`
}

// DefaultConfig returns a Config populated with the default settings.
func DefaultConfig() *Config {
	return &Config{
		GRPCAddr:      DefaultGRPCAddr,
		HTTPAddr:      DefaultHTTPAddr,
		LogLevel:      DefaultLogLevel,
		MaxConcurrent: DefaultMaxConcurrent,
	}
}
