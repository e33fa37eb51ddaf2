package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_HTTP_ADDR is the REST and websocket address of a running server, tests are skipped without it
	HTTPAddr string `envconfig:"E2E_HTTP_ADDR"`
	GrpcAddr string `envconfig:"E2E_GRPC_ADDR"`
	Channel  string `envconfig:"E2E_CHANNEL" default:"General"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
