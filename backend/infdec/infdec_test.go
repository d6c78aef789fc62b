package infdec_test

import (
	"testing"

	"github.com/govalues/number"
	"github.com/govalues/number/backend/backendtest"
	"github.com/govalues/number/backend/infdec"
	"github.com/stretchr/testify/assert"
)

var _ number.Backend = (*infdec.Backend)(nil)

func TestBackend(t *testing.T) {
	backendtest.Run(t, func(prec int) backendtest.Backend {
		return infdec.New(prec)
	})
}

func TestNew_negativePrecision(t *testing.T) {
	assert.Equal(t, 0, infdec.New(-3).Precision())
}
