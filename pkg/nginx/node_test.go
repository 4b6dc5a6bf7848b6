package nginx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalDirective(t *testing.T, d *Directive) string {
	t.Helper()
	b, err := json.Marshal(d)
	require.NoError(t, err)
	return string(b)
}

func TestDirectiveMarshalSimple(t *testing.T) {
	got := marshalDirective(t, &Directive{
		Directive: "listen",
		Line:      3,
		Args:      []string{"80"},
	})
	assert.JSONEq(t, `{"directive":"listen","line":3,"args":["80"]}`, got)
}

func TestDirectiveMarshalNoArgs(t *testing.T) {
	// args is always a list, never null
	got := marshalDirective(t, &Directive{Directive: "daemon", Line: 1})
	assert.JSONEq(t, `{"directive":"daemon","line":1,"args":[]}`, got)
}

func TestDirectiveMarshalEmptyBlock(t *testing.T) {
	got := marshalDirective(t, &Directive{
		Directive: "events",
		Line:      1,
		Args:      []string{},
		Block:     []*Directive{},
	})
	assert.JSONEq(t, `{"directive":"events","line":1,"args":[],"block":[]}`, got)
}

func TestDirectiveMarshalNilBlockOmitted(t *testing.T) {
	got := marshalDirective(t, &Directive{Directive: "user", Line: 1, Args: []string{"nginx"}})
	assert.NotContains(t, got, `"block"`)
	assert.NotContains(t, got, `"includes"`)
	assert.NotContains(t, got, `"comment"`)
}

func TestDirectiveMarshalEmptyIncludes(t *testing.T) {
	// an include that matched nothing still carries an empty list
	got := marshalDirective(t, &Directive{
		Directive: "include",
		Line:      2,
		Args:      []string{"conf.d/*.conf"},
		Includes:  []int{},
	})
	assert.JSONEq(t, `{"directive":"include","line":2,"args":["conf.d/*.conf"],"includes":[]}`, got)
}

func TestDirectiveMarshalComment(t *testing.T) {
	got := marshalDirective(t, &Directive{
		Directive: "#",
		Line:      5,
		Args:      []string{},
		Comment:   " managed by ansible",
	})
	assert.JSONEq(t, `{"directive":"#","line":5,"args":[],"comment":" managed by ansible"}`, got)
}

func TestDirectiveMarshalEmptyComment(t *testing.T) {
	// a bare "#" line keeps its (empty) comment key
	got := marshalDirective(t, &Directive{Directive: "#", Line: 1, Args: []string{}})
	assert.Contains(t, got, `"comment":""`)
}

func TestPayloadMarshalShape(t *testing.T) {
	fsys := newMemFS(map[string]string{
		"/t/nginx.conf": "events {}\n",
	})
	p := mustParser(t, WithFileSystem(fsys))

	b, err := json.Marshal(p.Parse("/t/nginx.conf"))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"status": "ok",
		"errors": [],
		"config": [{
			"file": "/t/nginx.conf",
			"status": "ok",
			"errors": [],
			"parsed": [{"directive":"events","line":1,"args":[],"block":[]}]
		}]
	}`, string(b))
}

func TestPayloadErrorMarshal(t *testing.T) {
	b, err := json.Marshal(PayloadError{
		Kind:    ErrFileNotFound,
		Message: "open /t/missing.conf: file does not exist",
		File:    "/t/nginx.conf",
		Line:    4,
	})
	require.NoError(t, err)

	// the kind is internal; the wire shape carries message, file and line
	assert.JSONEq(t, `{
		"error": "open /t/missing.conf: file does not exist",
		"file": "/t/nginx.conf",
		"line": 4
	}`, string(b))
}
