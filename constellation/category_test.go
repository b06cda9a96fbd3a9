package constellation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory("  AGUA ")
	require.NoError(t, err)
	assert.Equal(t, Water, got)

	_, err = ParseCategory("plastico")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryAttributes(t *testing.T) {
	assert.Len(t, Categories(), 6)
	assert.Equal(t, 392.0, Flora.Tone())
	assert.Equal(t, 523.0, Water.Tone())
	assert.Equal(t, uint32(0x2F9BFF), Water.Color())
	assert.Equal(t, "category(9)", Category(9).String())
	assert.False(t, Category(9).Valid())
	assert.Equal(t, 0.0, Category(9).Tone())
}

func TestDefaultSequenceShape(t *testing.T) {
	require.Len(t, DefaultSequence, RingSize)
	assert.Equal(t, []Category{Water, Water, Soil}, DefaultSequence[:3])
}

func TestReasonFeedback(t *testing.T) {
	assert.False(t, ReasonNone.Feedback())
	assert.False(t, InvalidSelection.Feedback())
	assert.True(t, AdjacencyViolation.Feedback())
	assert.True(t, Duplicate.Feedback())
	assert.True(t, SequenceMismatch.Feedback())
	assert.Equal(t, "adjacency-violation", AdjacencyViolation.String())
}
