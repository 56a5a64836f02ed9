package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortDir(t *testing.T) {
	assert.Equal(t, "DESC", SortDir("desc"))
	assert.Equal(t, "ASC", SortDir("asc"))
	assert.Equal(t, "ASC", SortDir(""))
	assert.Equal(t, "ASC", SortDir("DESC")) // 只认小写
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 10, ClampLimit(0, 10))
	assert.Equal(t, 10, ClampLimit(-3, 10))
	assert.Equal(t, 10, ClampLimit(500, 10))
	assert.Equal(t, 25, ClampLimit(25, 10))
}
