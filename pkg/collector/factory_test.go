package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscope/confscope/pkg/collector/process"
	"github.com/confscope/confscope/pkg/collector/systemd"
	"github.com/confscope/confscope/pkg/collector/webconfig"
	"github.com/confscope/confscope/pkg/nginx"
)

func TestNewDefaultFactoryDefaults(t *testing.T) {
	f := NewDefaultFactory()

	assert.Equal(t, []string{"nginx.service"}, f.SystemDServices)
	assert.Equal(t, webconfig.DefaultConfigPath, f.ConfigPath)
	assert.Contains(t, f.ProcessNames, "nginx")
}

func TestFactoryOptions(t *testing.T) {
	f := NewDefaultFactory(
		WithSystemDServices([]string{"nginx.service", "php-fpm.service"}),
		WithConfigPath("/srv/nginx/nginx.conf"),
		WithProcessNames([]string{"nginx"}),
		WithParserOptions(nginx.WithComments(true)),
	)

	sd, ok := f.CreateSystemDCollector().(*systemd.Collector)
	require.True(t, ok)
	assert.Equal(t, []string{"nginx.service", "php-fpm.service"}, sd.Services)

	wc, ok := f.CreateWebConfigCollector().(*webconfig.Collector)
	require.True(t, ok)
	assert.Equal(t, "/srv/nginx/nginx.conf", wc.ConfigPath)
	assert.Len(t, wc.ParserOptions, 1)

	pc, ok := f.CreateProcessCollector().(*process.Collector)
	require.True(t, ok)
	assert.Equal(t, []string{"nginx"}, pc.Names)
}

func TestFactoryCreatesAllCollectors(t *testing.T) {
	f := NewDefaultFactory()

	for i, create := range []func() Collector{
		f.CreateWebConfigCollector,
		f.CreateProcessCollector,
		f.CreateSystemDCollector,
		f.CreateHostCollector,
	} {
		assert.NotNil(t, create(), "collector %d", i)
	}
}
