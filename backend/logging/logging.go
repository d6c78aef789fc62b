// Package logging decorates an arithmetic backend with structured logging.
package logging

import (
	"context"
	"errors"

	"github.com/govalues/number"
	"github.com/govalues/number/log"
)

// Backend logs every call to the wrapped backend.
// Successful calls are logged at debug level, division by zero at warn level
// and any other failure at error level.
type Backend struct {
	next   number.Backend
	logger log.Logger
}

var _ number.Backend = (*Backend)(nil)

// Wrap returns a backend that forwards calls to next and logs them to logger.
// A nil logger disables logging.
func Wrap(next number.Backend, logger log.Logger) *Backend {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Backend{
		next:   next,
		logger: logger.With(log.Int("precision", next.Precision())),
	}
}

// Unwrap returns the wrapped backend.
func (b *Backend) Unwrap() number.Backend {
	return b.next
}

// Precision returns the precision of the wrapped backend.
func (b *Backend) Precision() int {
	return b.next.Precision()
}

func (b *Backend) call(op number.Op, f func(x, y string) (string, error), x, y string) (string, error) {
	z, err := f(x, y)

	var level log.Level
	switch {
	case err == nil:
		level = log.LevelDebug
	case errors.Is(err, number.ErrDivisionByZero):
		level = log.LevelWarn
	default:
		level = log.LevelError
	}
	if !b.logger.Enabled(level) {
		return z, err
	}

	fields := []log.Field{
		log.String("op", op.String()),
		log.String("x", x),
		log.String("y", y),
	}
	if err != nil {
		b.logger.Log(context.Background(), level, "backend call failed", append(fields, log.Err(err))...)
		return z, err
	}
	b.logger.Log(context.Background(), level, "backend call", append(fields, log.String("result", z))...)
	return z, nil
}

// Add forwards to the wrapped backend.
func (b *Backend) Add(x, y string) (string, error) {
	return b.call(number.OpAdd, b.next.Add, x, y)
}

// Sub forwards to the wrapped backend.
func (b *Backend) Sub(x, y string) (string, error) {
	return b.call(number.OpSub, b.next.Sub, x, y)
}

// Mul forwards to the wrapped backend.
func (b *Backend) Mul(x, y string) (string, error) {
	return b.call(number.OpMul, b.next.Mul, x, y)
}

// Quo forwards to the wrapped backend.
func (b *Backend) Quo(x, y string) (string, error) {
	return b.call(number.OpQuo, b.next.Quo, x, y)
}

// Cmp forwards to the wrapped backend.
func (b *Backend) Cmp(x, y string) int {
	r := b.next.Cmp(x, y)
	if b.logger.Enabled(log.LevelDebug) {
		b.logger.Log(context.Background(), log.LevelDebug, "backend call",
			log.String("op", "cmp"),
			log.String("x", x),
			log.String("y", y),
			log.Any("result", r),
		)
	}
	return r
}
