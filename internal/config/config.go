package config

import (
	"fmt"
	"os"
	"path"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public Public
}

// Public holds settings from public.yaml. PostRPS is the per client IP
// allowance for POST requests; 0 disables limiting. AllowedOrigins must be
// set explicitly, an empty CORS list would allow every origin.
type Public struct {
	StoragePath    string   `yaml:"storage_path" validate:"required"`
	DefaultAuthor  string   `yaml:"default_author" validate:"required"`
	TitleMaxLen    int      `yaml:"title_max_len" validate:"required,gt=0"`
	BodyMaxLen     int      `yaml:"body_max_len" validate:"required,gt=0"`
	AuthorMaxLen   int      `yaml:"author_max_len" validate:"required,gt=0"`
	LogLevel       string   `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON        bool     `yaml:"log_json"`
	Port           string   `yaml:"port" validate:"required,numeric"`
	AllowedOrigins []string `yaml:"allowed_origins" validate:"required,min=1,dive,required"`
	PostRPS        float64  `yaml:"post_rps" validate:"gte=0"`
	PostBurst      int      `yaml:"post_burst" validate:"gte=0"`
	SecureCookies  bool     `yaml:"secure_cookies"`
}

// MaxRequestBytes caps a post request body. A rune takes at most 6 bytes once
// JSON-escaped (\uXXXX), plus room for keys and form overhead.
func (p Public) MaxRequestBytes() int64 {
	return int64(6*(p.TitleMaxLen+p.BodyMaxLen+p.AuthorMaxLen)) + 1024
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.UnmarshalStrict(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %v", configPath, err))
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(output); err != nil {
		panic(fmt.Sprintf("invalid config %s: %v", configPath, err))
	}
}

// MustLoad reads public.yaml from configFolder. PORT in the environment
// overrides the configured port.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	if port := os.Getenv("PORT"); port != "" {
		public.Port = port
	}
	if public.LogLevel == "" {
		public.LogLevel = "info"
	}

	return &Config{Public: public}
}
