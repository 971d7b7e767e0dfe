package ordernum

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)

func TestNewFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		num, err := New()
		require.NoError(t, err)
		assert.Regexp(t, orderNumberPattern, num)
	}
}

func TestNewVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		num, err := New()
		require.NoError(t, err)
		seen[num] = true
	}
	// Collisions are possible but 50 identical draws are not
	assert.Greater(t, len(seen), 1)
}
