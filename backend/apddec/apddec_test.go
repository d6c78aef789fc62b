package apddec_test

import (
	"testing"

	"github.com/govalues/number"
	"github.com/govalues/number/backend/apddec"
	"github.com/govalues/number/backend/backendtest"
	"github.com/stretchr/testify/assert"
)

var _ number.Backend = (*apddec.Backend)(nil)

func TestBackend(t *testing.T) {
	backendtest.Run(t, func(prec int) backendtest.Backend {
		return apddec.New(prec)
	})
}

func TestNew_negativePrecision(t *testing.T) {
	assert.Equal(t, 0, apddec.New(-1).Precision())
}
