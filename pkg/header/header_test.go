package header

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindSnapshot),
		WithAPIVersion("confscope/v1"),
		WithMetadata("host", "web-1"),
	)

	assert.Equal(t, KindSnapshot, h.Kind)
	assert.Equal(t, "confscope/v1", h.APIVersion)
	assert.Equal(t, "web-1", h.Metadata["host"])

	_, err := uuid.Parse(h.ID)
	require.NoError(t, err, "ID must be a valid UUID")
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindParseResult, "confscope/v1", "1.2.3")

	assert.Equal(t, KindParseResult, h.Kind)
	assert.Equal(t, "confscope/v1", h.APIVersion)
	assert.Equal(t, "1.2.3", h.Metadata["version"])
	require.NotEmpty(t, h.ID)

	ts, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestInitWithoutVersion(t *testing.T) {
	var h Header
	h.Init(KindSnapshot, "confscope/v1", "")
	assert.NotContains(t, h.Metadata, "version")
}

func TestKindIsValid(t *testing.T) {
	assert.True(t, KindSnapshot.IsValid())
	assert.True(t, KindParseResult.IsValid())
	assert.False(t, Kind("Recipe").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestNewIDsAreUnique(t *testing.T) {
	a, b := New(), New()
	assert.NotEqual(t, a.ID, b.ID)
}
