package systemd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/confscope/confscope/pkg/measurement"
)

// Collect needs a running systemd; environments without one get a clean
// error, never a panic.
func TestCollect(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := &Collector{Services: []string{"nginx.service"}}
	m, err := c.Collect(ctx)
	if err != nil {
		t.Logf("systemd not available (acceptable): %v", err)
		return
	}

	assert.Equal(t, measurement.TypeSystemD, m.Type)
	assert.Len(t, m.Subtypes, 1)
	assert.Equal(t, "nginx.service", m.Subtypes[0].Name)
}

func TestFilterOutKeysCoverCredentials(t *testing.T) {
	readings := map[string]any{
		"ActiveState":        "active",
		"LoadCredential":     "x",
		"SetCredentialValue": "y",
		"BusName":            "org.freedesktop",
	}

	got := measurement.FilterOut(readings, filterOutKeys)
	assert.Equal(t, map[string]any{"ActiveState": "active"}, got)
}
