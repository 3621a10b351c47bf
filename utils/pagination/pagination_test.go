package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClampsInputs(t *testing.T) {
	p := New(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 0, p.Offset)

	p = New(3, 25)
	assert.Equal(t, 50, p.Offset)

	p = New(1, 500)
	assert.Equal(t, 100, p.PageSize)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(2, 10, 25)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	meta = BuildMeta(1, 10, 0)
	assert.Equal(t, 0, meta.TotalPages)
}
