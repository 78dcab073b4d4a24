package config

import (
	"errors"
	"os"
	"strconv"
	"sync"
)

type Config struct {
	Env            string
	LogLevel       string
	LogFile        string
	HTTPAddr       string
	DBType         string
	DBDSN          string
	DataDir        string
	AuthToken      string
	AuthServiceURL string
	OpenAIKey      string
	OpenAIModel    string
	OpenAITimeout  int // seconds
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = loadDotEnv()
		cfg = &Config{
			Env:            getEnv("APP_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			LogFile:        getEnv("LOG_FILE", ""),
			HTTPAddr:       getEnv("HTTP_ADDR", ":8088"),
			DBType:         getEnv("STORAGE_BACKEND", "file"),
			DBDSN:          getEnv("POSTGRES_DSN", ""),
			DataDir:        getEnv("DATA_DIR", "data"),
			AuthToken:      getEnv("AUTH_TOKEN", "MOCK-TOKEN"),
			AuthServiceURL: getEnv("AUTH_SERVICE_URL", ""),
			OpenAIKey:      getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4"),
			OpenAITimeout:  getEnvInt("OPENAI_TIMEOUT_SECONDS", 30),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.DBType == "postgres" && c.DBDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.DBType == "file" && c.DataDir == "" {
		return errors.New("File storage requires DATA_DIR to be set")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthServiceURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	if c.OpenAITimeout <= 0 {
		return errors.New("OPENAI_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		f, err := os.Open(".env")
		if err != nil {
			return err
		}
		defer f.Close()
		var lines []string
		buf := make([]byte, 4096)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				lines = append(lines, string(buf[:n]))
			}
			if err != nil {
				break
			}
		}
		for _, line := range lines {
			for _, l := range splitLines(line) {
				if len(l) == 0 || l[0] == '#' {
					continue
				}
				kv := splitKV(l)
				if len(kv) == 2 {
					os.Setenv(kv[0], kv[1])
				}
			}
		}
	}
	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' || c == '\r' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func splitKV(s string) []string {
	for i, c := range s {
		if c == '=' {
			return []string{s[:i], s[i+1:]}
		}
	}
	return nil
}
