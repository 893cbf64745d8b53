// Package logsink wires slog to an OTLP log exporter when one is configured,
// and leaves the default text handler in place otherwise.
package logsink

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

type Config struct {
	Endpoint string // OTLP/HTTP logs endpoint URL
	Service  string
}

func FromEnv() Config {
	return Config{
		Endpoint: os.Getenv("OTLP_LOGS_ENDPOINT"),
		Service:  "soapbox",
	}
}

func (c Config) Enabled() bool {
	return c.Endpoint != ""
}

// Setup installs the OTLP-backed slog default handler and returns a shutdown
// function that flushes buffered records.
func Setup(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	exporter, err := otlploghttp.New(ctx, otlploghttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("create OTLP log exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	slog.SetDefault(slog.New(otelslog.NewHandler(cfg.Service, otelslog.WithLoggerProvider(provider))))
	return provider.Shutdown, nil
}
