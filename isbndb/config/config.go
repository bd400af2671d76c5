package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/isbndb-service/pkg/kafka"
	"github.com/Astemirdum/isbndb-service/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"ISBNDB_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"ISBNDB_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

// ISBNdb configures the client library and the adapter's own key. An empty
// AccessKey makes the adapter fall back to DefaultAccessKey.
type ISBNdb struct {
	AccessKey        string        `json:"-" envconfig:"ISBNDB_ACCESS_KEY"`
	DefaultAccessKey string        `json:"-" envconfig:"ISBNDB_DEFAULT_ACCESS_KEY"`
	BaseURL          string        `envconfig:"ISBNDB_BASE_URL" default:"https://api2.isbndb.com"`
	Timeout          time.Duration `envconfig:"ISBNDB_TIMEOUT" default:"30s"`
	RPS              float64       `envconfig:"ISBNDB_RPS" default:"1"`
	PageSize         int           `envconfig:"ISBNDB_PAGE_SIZE" default:"20"`
}

type Config struct {
	Server HTTPServer   `yaml:"server"`
	ISBNdb ISBNdb       `yaml:"isbndb"`
	Kafka  kafka.Config `yaml:"kafka"`
	Log    logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

// Load reads a fresh config from environment without caching it.
func Load(ops ...Option) (Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
