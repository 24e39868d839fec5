// Command contractdoc prints the OpenAPI document of the example accounts
// contract as JSON or YAML.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/contractkit/handler"
	"github.com/dmitrymomot/contractkit/pkg/config"
	"github.com/dmitrymomot/contractkit/pkg/contract"
	"github.com/dmitrymomot/contractkit/pkg/environment"
	"github.com/dmitrymomot/contractkit/pkg/logger"
)

type appConfig struct {
	Title    string `env:"CONTRACT_TITLE" envDefault:"accounts"`
	Version  string `env:"CONTRACT_VERSION" envDefault:"1.0.0"`
	Format   string `env:"CONTRACT_FORMAT" envDefault:"json"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.Env), "contractdoc"),
		logger.WithLevel(level),
		logger.WithOutput(os.Stderr),
	)

	var httpCfg handler.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}

	c, err := accounts(cfg.Title, cfg.Version, log,
		contract.WithWrapOptions(handler.WithConfig(httpCfg)),
	)
	if err != nil {
		return err
	}
	doc, err := c.OpenAPI(ctx)
	if err != nil {
		return err
	}

	out, err := render(doc, cfg.Format)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "document rendered",
		logger.Component("contractdoc"),
		slog.String("format", cfg.Format),
	)

	_, err = os.Stdout.Write(out)
	return err
}
