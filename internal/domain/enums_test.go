package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boughtleaf/internal/domain"
)

func TestParseLeafType(t *testing.T) {
	lt, ok := domain.ParseLeafType("Normal")
	assert.True(t, ok)
	assert.Equal(t, domain.LeafTypeNormal, lt)

	lt, ok = domain.ParseLeafType("Super")
	assert.True(t, ok)
	assert.Equal(t, domain.LeafTypeSuper, lt)

	for _, bad := range []string{"", "normal", "SUPER", "Premium"} {
		_, ok := domain.ParseLeafType(bad)
		assert.False(t, ok, "value %q should be rejected", bad)
	}
}
