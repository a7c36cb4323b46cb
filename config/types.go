package config

// ServerConfig contains the HTTP facade configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// ServiceConfig points at the route optimization service
type ServiceConfig struct {
	BaseURL      string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS    int    `yaml:"timeoutMS" validate:"gte=0"`
	MaxTransfers int    `yaml:"maxTransfers" validate:"gte=0"`
}

// DirectoryConfig selects the location directory source
type DirectoryConfig struct {
	// Source is "static" for the compiled-in table or "remote" for a
	// fetched station list.
	Source string `yaml:"source" validate:"omitempty,oneof=static remote"`
	URL    string `yaml:"url" validate:"omitempty,url"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Service   ServiceConfig   `yaml:"service"`
	Directory DirectoryConfig `yaml:"directory"`
}
