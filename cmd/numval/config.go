package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/govalues/number"
	"github.com/govalues/number/backend/apddec"
	"github.com/govalues/number/backend/fixeddec"
	"github.com/govalues/number/backend/infdec"
	"github.com/govalues/number/backend/shopdec"
	"github.com/govalues/number/zap"
)

const (
	envBackend   = "NUMVAL_BACKEND"
	envPrecision = "NUMVAL_PRECISION"
	envLogLevel  = "NUMVAL_LOG_LEVEL"
	envEnv       = "NUMVAL_ENV"
)

type config struct {
	Backend   string
	Precision int
	LogLevel  string
	Env       zap.Environment
}

// getenvOrDefault returns the value of the environment variable key,
// or def when the variable is unset or blank.
func getenvOrDefault(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}

// loadConfig reads the configuration from flags, falling back to the
// environment and then to built-in defaults. Flag parsing stops at the
// command name, so operands such as "-1" are never taken for flags.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (config, []string, error) {
	prec, err := strconv.Atoi(getenvOrDefault(getenv, envPrecision, strconv.Itoa(number.DefaultPrecision)))
	if err != nil {
		return config{}, nil, fmt.Errorf("parsing %v: %w", envPrecision, err)
	}

	var cfg config
	var env string

	fs := flag.NewFlagSet("numval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Backend, "backend", getenvOrDefault(getenv, envBackend, "inf"), "arithmetic backend: inf, apd, shopspring or fixed")
	fs.IntVar(&cfg.Precision, "precision", prec, "number of fractional digits")
	fs.StringVar(&cfg.LogLevel, "log-level", getenvOrDefault(getenv, envLogLevel, "error"), "log level: debug, info, warn or error")
	fs.StringVar(&env, "env", getenvOrDefault(getenv, envEnv, string(zap.EnvironmentProduction)), "logger profile: production, development or local")

	if err := fs.Parse(args); err != nil {
		return config{}, nil, err
	}
	if cfg.Precision < 0 {
		return config{}, nil, fmt.Errorf("precision %v is negative", cfg.Precision)
	}
	cfg.Env = zap.Environment(env)

	return cfg, fs.Args(), nil
}

// newBackend creates the backend named by cfg.
func newBackend(cfg config) (number.Backend, error) {
	switch strings.ToLower(cfg.Backend) {
	case "inf", "infdec":
		return infdec.New(cfg.Precision), nil
	case "apd", "apddec":
		return apddec.New(cfg.Precision), nil
	case "shopspring", "shop", "shopdec":
		return shopdec.New(cfg.Precision), nil
	case "fixed", "fixeddec":
		return fixeddec.New(cfg.Precision), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
