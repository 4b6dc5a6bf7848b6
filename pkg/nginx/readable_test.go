package nginx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseReadable(t *testing.T, files map[string]string, root string, opts ...Option) *ReadableConfig {
	t.Helper()
	opts = append([]Option{WithFileSystem(newMemFS(files))}, opts...)
	p := mustParser(t, opts...)
	return Readable(p.Parse(root))
}

func TestReadableSimple(t *testing.T) {
	rc := parseReadable(t, map[string]string{
		"/t/nginx.conf": "user nginx;\nevents { worker_connections 1024; }\n",
	}, "/t/nginx.conf")

	require.Equal(t, StatusOK, rc.Status)
	assert.Equal(t, map[string]any{
		"user": "nginx",
		"events": map[string]any{
			"worker_connections": "1024",
		},
	}, rc.Config)
}

func TestReadableValueShapes(t *testing.T) {
	rc := parseReadable(t, map[string]string{
		"/t/nginx.conf": `
daemon;
worker_processes auto;
error_log /var/log/nginx/error.log warn;
`,
	}, "/t/nginx.conf")

	assert.Equal(t, map[string]any{
		"daemon":           nil,
		"worker_processes": "auto",
		"error_log":        []string{"/var/log/nginx/error.log", "warn"},
	}, rc.Config)
}

func TestReadableRepeatedDirectives(t *testing.T) {
	rc := parseReadable(t, map[string]string{
		"/t/nginx.conf": `
http {
  server { listen 80; }
  server { listen 443; }
}
`,
	}, "/t/nginx.conf")

	httpVal, ok := rc.Config["http"].(map[string]any)
	require.True(t, ok)

	servers, ok := httpVal["server"].([]any)
	require.True(t, ok, "repeated blocks collapse into an ordered list")
	require.Len(t, servers, 2)
	assert.Equal(t, map[string]any{"listen": "80"}, servers[0])
	assert.Equal(t, map[string]any{"listen": "443"}, servers[1])
}

func TestReadableRepeatedMultiArgDirectives(t *testing.T) {
	rc := parseReadable(t, map[string]string{
		"/t/nginx.conf": "set $a 1;\nset $b 2;\n",
	}, "/t/nginx.conf")

	// each occurrence is a []string value; the repetition list wraps them
	sets, ok := rc.Config["set"].([]any)
	require.True(t, ok)
	require.Len(t, sets, 2)
	assert.Equal(t, []string{"$a", "1"}, sets[0])
	assert.Equal(t, []string{"$b", "2"}, sets[1])
}

func TestReadableLocationKeys(t *testing.T) {
	rc := parseReadable(t, map[string]string{
		"/t/nginx.conf": `
http {
  server {
    location / { root /var/www; }
    location ~ \.php$ { return 404; }
    if ($bad) { return 403; }
  }
}
`,
	}, "/t/nginx.conf")

	server := rc.Config["http"].(map[string]any)["server"].(map[string]any)
	assert.Contains(t, server, "location /")
	assert.Contains(t, server, `location ~ \.php$`)
	assert.Contains(t, server, "if $bad")
	assert.Equal(t, map[string]any{"root": "/var/www"}, server["location /"])
}

func TestReadableMergesIncludesInline(t *testing.T) {
	rc := parseReadable(t, map[string]string{
		"/t/nginx.conf": "http { include mime.conf; sendfile on; }\n",
		"/t/mime.conf":  "default_type application/octet-stream;\n",
	}, "/t/nginx.conf")

	require.Equal(t, StatusOK, rc.Status)
	httpVal, ok := rc.Config["http"].(map[string]any)
	require.True(t, ok)

	assert.NotContains(t, httpVal, "include", "no trace of the include directive")
	assert.Equal(t, "application/octet-stream", httpVal["default_type"])
	assert.Equal(t, "on", httpVal["sendfile"])
}

func TestReadableIncludeMergeCollapsesRepeats(t *testing.T) {
	rc := parseReadable(t, map[string]string{
		"/t/nginx.conf": "http { server { listen 80; } include extra.conf; }\n",
		"/t/extra.conf": "server { listen 443; }\n",
	}, "/t/nginx.conf")

	httpVal := rc.Config["http"].(map[string]any)
	servers, ok := httpVal["server"].([]any)
	require.True(t, ok, "included siblings collapse with local ones")
	require.Len(t, servers, 2)
}

func TestReadableComments(t *testing.T) {
	rc := parseReadable(t, map[string]string{
		"/t/nginx.conf": "# first\nuser nginx;\n# second\n",
	}, "/t/nginx.conf", WithComments(true))

	assert.Equal(t, " first", rc.Config["#1"])
	assert.Equal(t, " second", rc.Config["#2"])
	assert.Equal(t, "nginx", rc.Config["user"])
}

func TestReadableFailedParseKeepsPartial(t *testing.T) {
	rc := parseReadable(t, map[string]string{
		"/t/nginx.conf": "user nginx;\nhttp { sendfile on;\n",
	}, "/t/nginx.conf")

	require.Equal(t, StatusFailed, rc.Status)
	require.NotEmpty(t, rc.Errors)
	assert.Equal(t, "nginx", rc.Config["user"])
	assert.Equal(t, map[string]any{"sendfile": "on"}, rc.Config["http"])
}

func TestReadableDeterministic(t *testing.T) {
	files := map[string]string{
		"/t/nginx.conf": "include a.conf;\ninclude b.conf;\nuser nginx;\n",
		"/t/a.conf":     "sendfile on;\ntcp_nopush on;\n",
		"/t/b.conf":     "tcp_nodelay on;\n",
	}

	first, err := json.Marshal(parseReadable(t, files, "/t/nginx.conf"))
	require.NoError(t, err)
	for range 5 {
		next, err := json.Marshal(parseReadable(t, files, "/t/nginx.conf"))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(next))
	}
}

func TestReadableEmptyPayload(t *testing.T) {
	rc := parseReadable(t, map[string]string{}, "/t/missing.conf")

	require.Equal(t, StatusFailed, rc.Status)
	assert.NotNil(t, rc.Config)
	assert.Empty(t, rc.Config)
}
