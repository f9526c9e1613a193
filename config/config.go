package config

import (
	"fmt"
	"os"
	"time"

	"github.com/alejandrodnm/moltdesk/internal/listview"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del desk.
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig contiene el base URL y las credenciales de la plataforma.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// APIKey es la key del agente ("mst_..."). Normalmente llega por env
	// (MOLTSTREET_API_KEY), no por YAML, para no commitearla.
	APIKey string `yaml:"api_key"`
	// AdminKey habilita el panel de admin. Solo por env (MOLTSTREET_ADMIN_KEY).
	AdminKey string `yaml:"-"`
}

// UIConfig controla el comportamiento de las vistas.
type UIConfig struct {
	PerPage              int  `yaml:"per_page"`               // 10 | 25 | 50
	WatchIntervalSeconds int  `yaml:"watch_interval_seconds"` // refresh del watch mode
	CommentsPollSeconds  int  `yaml:"comments_poll_seconds"`  // poll del hilo de comentarios
	Compact              bool `yaml:"compact"`                // tablas compactas
}

// StorageConfig controla dónde se persisten los snapshots.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
// Con path vacío se arranca solo con env y defaults.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// WatchInterval devuelve el intervalo del watch mode como time.Duration.
func (c *Config) WatchInterval() time.Duration {
	return time.Duration(c.UI.WatchIntervalSeconds) * time.Second
}

// CommentsPoll devuelve el intervalo del poller de comentarios.
func (c *Config) CommentsPoll() time.Duration {
	return time.Duration(c.UI.CommentsPollSeconds) * time.Second
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MOLTSTREET_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("MOLTSTREET_API_KEY"); v != "" {
		cfg.API.APIKey = v
	}
	if v := os.Getenv("MOLTSTREET_ADMIN_KEY"); v != "" {
		cfg.API.AdminKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8000"
	}
	if !listview.ValidPageSize(cfg.UI.PerPage) {
		cfg.UI.PerPage = listview.DefaultPageSize
	}
	if cfg.UI.WatchIntervalSeconds <= 0 {
		cfg.UI.WatchIntervalSeconds = 30
	}
	if cfg.UI.CommentsPollSeconds <= 0 {
		cfg.UI.CommentsPollSeconds = 10
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "moltdesk.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
