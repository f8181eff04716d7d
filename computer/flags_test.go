package computer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags(t *testing.T) {
	assert := assert.New(t)

	var fl Flags
	assert.False(fl.IsZero())
	assert.False(fl.IsSigned())
	assert.Equal("--", fl.String())

	fl.Update(0)
	assert.True(fl.IsZero())
	assert.False(fl.IsSigned())
	assert.Equal("Z-", fl.String())

	fl.Update(-5)
	assert.False(fl.IsZero())
	assert.True(fl.IsSigned())
	assert.Equal("-S", fl.String())

	fl.Update(5)
	assert.False(fl.IsZero())
	assert.False(fl.IsSigned())

	fl.Update(0)
	fl.Reset()
	assert.False(fl.IsZero())
	assert.False(fl.IsSigned())
}
