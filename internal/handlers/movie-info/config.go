// internal/handlers/movie-info/config.go
package movieinfo

import "time"

type Config struct {
	Timeout         time.Duration
	SummaryMaxChars int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:         15 * time.Second,
		SummaryMaxChars: 120,
	}
}
