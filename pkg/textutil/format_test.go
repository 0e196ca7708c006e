package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.8", FormatRating(4.8))
	assert.Equal(t, "4.5", FormatRating(4.5))
	assert.Equal(t, "5.0", FormatRating(5))
	assert.Equal(t, "4.7", FormatRating(4.66))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★★", Stars(4.8))
	assert.Equal(t, "★★★★☆", Stars(4.2))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
	assert.Equal(t, "★★★★★", Stars(9))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Crystal Caverns", Truncate("Crystal Caverns", 20))
	assert.Equal(t, "Crystal...", Truncate("Crystal Caverns", 10))
	assert.Equal(t, "Cry", Truncate("Crystal Caverns", 3))
	assert.Equal(t, "", Truncate("Crystal Caverns", 0))
}
