package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenizer_BacktraceInvariant exercises spec.md §8 invariant 4:
// backtracing by n then advancing n+2 times returns the tokenizer to its
// original state (token/prev/prevPrev and line/column).
func TestTokenizer_BacktraceInvariant(t *testing.T) {
	tok, err := NewTokenizer([]byte("abcdef\nghij"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		tok.Advance()
	}

	wantToken, wantPrev, wantPrevPrev := tok.Token(), tok.Prev(), tok.PrevPrev()
	wantLine, wantCol := tok.Line(), tok.Column()

	const n = 2
	require.NoError(t, tok.Backtrace(n))
	for i := 0; i < n+2; i++ {
		tok.Advance()
	}

	assert.Equal(t, wantToken, tok.Token())
	assert.Equal(t, wantPrev, tok.Prev())
	assert.Equal(t, wantPrevPrev, tok.PrevPrev())
	assert.Equal(t, wantLine, tok.Line())
	assert.Equal(t, wantCol, tok.Column())
}

// TestTokenizer_BacktraceAcrossNewline exercises the same invariant when
// the rewound span crosses a line boundary, so Backtrace must consult
// lineLens rather than just subtracting from col.
func TestTokenizer_BacktraceAcrossNewline(t *testing.T) {
	tok, err := NewTokenizer([]byte("ab\ncd\nef"))
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		tok.Advance()
	}

	wantToken := tok.Token()
	wantLine, wantCol := tok.Line(), tok.Column()

	const n = 3
	require.NoError(t, tok.Backtrace(n))
	for i := 0; i < n+2; i++ {
		tok.Advance()
	}

	assert.Equal(t, wantToken, tok.Token())
	assert.Equal(t, wantLine, tok.Line())
	assert.Equal(t, wantCol, tok.Column())
}

func TestTokenizer_BacktraceRejectsOutOfRange(t *testing.T) {
	tok, err := NewTokenizer([]byte("ab"))
	require.NoError(t, err)
	tok.Advance()
	assert.Error(t, tok.Backtrace(10))
}
