package nginx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasic(t *testing.T) {
	src := "events { worker_connections 1024; }"
	toks, errs := Tokenize([]byte(src), "nginx.conf")
	require.Empty(t, errs)

	want := []Token{
		{Kind: TokenWord, Text: "events", Line: 1},
		{Kind: TokenBlockOpen, Text: "{", Line: 1},
		{Kind: TokenWord, Text: "worker_connections", Line: 1},
		{Kind: TokenWord, Text: "1024", Line: 1},
		{Kind: TokenStatementEnd, Text: ";", Line: 1},
		{Kind: TokenBlockClose, Text: "}", Line: 1},
	}
	assert.Equal(t, want, toks)
}

func TestTokenizePunctuationWithoutWhitespace(t *testing.T) {
	toks, errs := Tokenize([]byte("a{b;c}"), "t.conf")
	require.Empty(t, errs)
	require.Len(t, toks, 6)
	assert.Equal(t, TokenWord, toks[0].Kind)
	assert.Equal(t, TokenBlockOpen, toks[1].Kind)
	assert.Equal(t, "b", toks[2].Text)
	assert.Equal(t, TokenStatementEnd, toks[3].Kind)
	assert.Equal(t, "c", toks[4].Text)
	assert.Equal(t, TokenBlockClose, toks[5].Kind)
}

func TestTokenizeQuotedStrings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"double", `root "/var/www/my site";`, "/var/www/my site"},
		{"single", `root '/var/www/html';`, "/var/www/html"},
		{"escaped quote", `log_format "a \" b";`, `a " b`},
		{"escaped backslash", `log_format "a \\ b";`, `a \ b`},
		{"other escape kept", `log_format "a \n b";`, `a \n b`},
		{"brace inside quotes", `return "{ not a block }";`, "{ not a block }"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, errs := Tokenize([]byte(tc.src), "t.conf")
			require.Empty(t, errs)
			require.GreaterOrEqual(t, len(toks), 2)
			assert.Equal(t, TokenQuotedString, toks[1].Kind)
			assert.Equal(t, tc.want, toks[1].Text)
		})
	}
}

func TestTokenizeQuoteInsideWord(t *testing.T) {
	// a quote that starts mid-word is an ordinary character
	toks, errs := Tokenize([]byte(`set $v foo"bar";`), "t.conf")
	require.Empty(t, errs)
	require.Len(t, toks, 4)
	assert.Equal(t, `foo"bar"`, toks[2].Text)
	assert.Equal(t, TokenWord, toks[2].Kind)
}

func TestTokenizeComments(t *testing.T) {
	src := "# top comment\nuser nginx; # trailing\n"
	toks, errs := Tokenize([]byte(src), "t.conf")
	require.Empty(t, errs)
	require.Len(t, toks, 5)

	assert.Equal(t, TokenComment, toks[0].Kind)
	assert.Equal(t, " top comment", toks[0].Text)
	assert.Equal(t, 1, toks[0].Line)

	assert.Equal(t, TokenComment, toks[4].Kind)
	assert.Equal(t, " trailing", toks[4].Text)
	assert.Equal(t, 2, toks[4].Line)
}

func TestTokenizeLineTracking(t *testing.T) {
	src := "a;\nb;\n\nc \"multi\nline\" d;\ne;"
	toks, errs := Tokenize([]byte(src), "t.conf")
	require.Empty(t, errs)

	byText := map[string]int{}
	for _, tok := range toks {
		byText[tok.Text] = tok.Line
	}
	assert.Equal(t, 1, byText["a"])
	assert.Equal(t, 2, byText["b"])
	assert.Equal(t, 4, byText["c"])
	assert.Equal(t, 4, byText["multi\nline"]) // quoted token starts on line 4
	assert.Equal(t, 5, byText["d"])           // newline inside the string was counted
	assert.Equal(t, 6, byText["e"])
}

func TestTokenizeParameterExpansion(t *testing.T) {
	toks, errs := Tokenize([]byte("set $x ${var};"), "t.conf")
	require.Empty(t, errs)
	require.Len(t, toks, 4)
	assert.Equal(t, "${var}", toks[2].Text)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	toks, errs := Tokenize([]byte("root \"no end"), "t.conf")

	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnterminatedString, errs[0].Kind)
	assert.Equal(t, "t.conf", errs[0].File)
	assert.Equal(t, 1, errs[0].Line)

	// best-effort token is still produced
	require.Len(t, toks, 2)
	assert.Equal(t, "no end", toks[1].Text)
}

func TestTokenizeNeverFails(t *testing.T) {
	// pathological inputs still tokenize
	for _, src := range []string{"", "}}}{{{", "\\", "'", "# only comment", ";;;"} {
		toks, _ := Tokenize([]byte(src), "t.conf")
		_ = toks
	}
}
