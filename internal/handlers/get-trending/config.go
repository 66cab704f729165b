// internal/handlers/get-trending/config.go
package gettrending

import "time"

type Config struct {
	Timeout    time.Duration
	MaxResults int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    15 * time.Second,
		MaxResults: 5,
	}
}
