package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=5000"`
	GrpcPort int    `env:"GRPC_PORT,default=5001"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	BufferSize           int           `env:"BUFFER_SIZE,default=1000"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=500ms"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=5s"`
	LimitMessages        *int          `env:"LIMIT_MESSAGES"`
	SearchBatchSize      int           `env:"SEARCH_BATCH_SIZE,default=50"`
	SearchFlushTimeout   time.Duration `env:"SEARCH_FLUSH_TIMEOUT,default=2s"`
	MaxSearchLimit       int           `env:"MAX_SEARCH_LIMIT,default=100"`

	CharReplacement    string  `env:"CHARACTER_REPLACEMENT,default=*"`
	MaxContentLength   int     `env:"MAX_CONTENT_LENGTH,default=2000"`
	MaxFragmentSamples int     `env:"MAX_FRAGMENT_SAMPLES,default=16384"`
	MessageRate        float64 `env:"MESSAGE_RATE,default=5"`
	MessageBurst       int     `env:"MESSAGE_BURST,default=10"`

	PingInterval    time.Duration `env:"PING_INTERVAL,default=30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	AllowedOrigins  string        `env:"ALLOWED_ORIGINS,default=*"`
	DefaultChannels string        `env:"DEFAULT_CHANNELS,default=General"`
	EnableDebug     bool          `env:"ENABLE_DEBUG,default=false"`
}

// LoadConfig reads the optional .env files then decodes the environment.
// Variables already set in the environment win over the files.
func LoadConfig(files ...string) (Config, error) {
	var config Config
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return config, fmt.Errorf("env file loading failed: %w", err)
	}
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return config, fmt.Errorf("config error: %w", err)
	}
	if config.BufferSize <= 0 || config.ConnectionBufferSize <= 0 {
		return config, fmt.Errorf("BUFFER_SIZE and CONNECTION_BUFFER_SIZE must be positive")
	}
	if config.PingInterval <= 0 {
		return config, fmt.Errorf("PING_INTERVAL must be positive, got %s", config.PingInterval)
	}
	return config, nil
}

func (c Config) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func (c Config) Channels() []string {
	return splitList(c.DefaultChannels)
}

func splitList(value string) []string {
	return lo.Compact(lo.Map(strings.Split(value, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
