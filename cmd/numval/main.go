// Command numval evaluates decimal arithmetic from the command line.
//
// Usage:
//
//	numval [flags] sum x...
//	numval [flags] avg x...
//	numval [flags] cmp x y
//	numval [flags] add|sub|mul|div x y...
//
// Every result is truncated towards zero to the configured precision.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/govalues/number"
	"github.com/govalues/number/backend/logging"
	"github.com/govalues/number/log"
	"github.com/govalues/number/zap"
)

const usage = `usage: numval [flags] command operands...

commands:
  sum x...              sum of the operands, 0 if there are none
  avg x...              arithmetic mean of the operands, 0 if there are none
  cmp x y               prints -1, 0 or 1
  add|sub|mul|div x y...  folds the operation from left to right

flags:`

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(execute(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit code.
func execute(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, args, err := loadConfig(args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, _, err := zap.New(zap.Config{Environment: cfg.Env, Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = logger.Sync(context.Background()) }()

	if err := run(cfg, args, stdout, logger); err != nil {
		logger.Log(context.Background(), log.LevelError, "numval failed", log.Err(err))
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, usage)
			return 2
		}
		return 1
	}
	return 0
}

// run evaluates a single command and writes its result to stdout.
func run(cfg config, args []string, stdout io.Writer, logger log.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("no command: %w", errUsage)
	}

	calc, err := newBackend(cfg)
	if err != nil {
		return err
	}
	ctx := number.NewContext(logging.Wrap(calc, logger.With(log.String("backend", cfg.Backend))))

	cmd, operands := args[0], make([]number.Operand, len(args)-1)
	for i, a := range args[1:] {
		operands[i] = number.Str(a)
	}

	var result any
	switch cmd {
	case "sum":
		result, err = ctx.Sum(operands...)
	case "avg", "mean":
		result, err = ctx.Mean(operands...)
	case "cmp":
		if len(operands) != 2 {
			return fmt.Errorf("cmp needs exactly 2 operands, got %v: %w", len(operands), errUsage)
		}
		var first number.Value
		first, err = ctx.Parse(args[1])
		if err != nil {
			return err
		}
		result, err = first.Cmp(operands[1])
	default:
		op, opErr := number.ParseOp(cmd)
		if opErr != nil {
			return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
		}
		if len(operands) == 0 {
			return fmt.Errorf("%v needs at least 1 operand: %w", cmd, errUsage)
		}
		var first number.Value
		first, err = ctx.Parse(args[1])
		if err != nil {
			return err
		}
		result, err = first.Apply(op, operands[1:]...)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, result)
	return err
}
