package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSize(t *testing.T) {
	assert.Equal(t, "0 B", Size(0))
	assert.Equal(t, "100 B", Size(100))
	assert.Equal(t, "1023 B", Size(1023))
	assert.Equal(t, "97.66 KB", Size(100000))
	assert.Equal(t, "95.37 MB", Size(100000000))
	assert.Equal(t, "93.13 GB", Size(100000000000))
	assert.Equal(t, "90.95 TB", Size(100000000000000))
	assert.Equal(t, "88.82 PB", Size(100000000000000000))
}

func TestSizeUnitBoundary(t *testing.T) {
	assert.Equal(t, "1.00 KB", Size(1024))
	assert.Equal(t, "1.00 MB", Size(1024*1024))
}

func TestSizePrec(t *testing.T) {
	assert.Equal(t, "97.7 KB", SizePrec(100000, 1))
	assert.Equal(t, "98 KB", SizePrec(100000, 0))
	// 100000/1024 = 97.65625 exactly; %.4f rounds half to even
	assert.Equal(t, "97.6562 KB", SizePrec(100000, 4))
}
