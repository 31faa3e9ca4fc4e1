package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdecook/loxi/internal/lexer"
	"github.com/samdecook/loxi/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanPunctuationAndOperators(t *testing.T) {
	s := lexer.New([]byte(`( ) { } [ ] : , . - + ; * / % ! != = == > >= < <= -= %= += /= *=`))
	toks := s.Scan()
	require.False(t, s.HadError())
	require.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.LeftBracket, token.RightBracket, token.Colon, token.Comma, token.Dot,
		token.Minus, token.Plus, token.Semicolon, token.Star, token.Slash, token.Percent,
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual,
		token.MinusEqual, token.PercentEqual, token.PlusEqual, token.SlashEqual, token.StarEqual,
		token.EOF,
	}, kinds(toks))
}

func TestScanKeywordsVsIdentifiers(t *testing.T) {
	s := lexer.New([]byte(`and break class const continue else false fun for if nil or print println return super this true var while notakeyword`))
	toks := s.Scan()
	require.False(t, s.HadError())
	require.Equal(t, token.Identifier, toks[len(toks)-2].Kind)
	require.Equal(t, "notakeyword", toks[len(toks)-2].Lexeme)
}

func TestScanStringLiteralsBothQuotes(t *testing.T) {
	s := lexer.New([]byte(`"hi" 'there'`))
	toks := s.Scan()
	require.False(t, s.HadError())
	require.Equal(t, "hi", toks[0].Lexeme)
	require.Equal(t, "there", toks[1].Lexeme)
}

func TestScanMultilineString(t *testing.T) {
	s := lexer.New([]byte("\"a\nb\" x"))
	toks := s.Scan()
	require.False(t, s.HadError())
	require.Equal(t, "a\nb", toks[0].Lexeme)
	require.Equal(t, 2, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	s := lexer.New([]byte(`"never closed`))
	s.Scan()
	require.True(t, s.HadError())
	require.Len(t, s.Errors(), 1)
}

func TestScanNumbers(t *testing.T) {
	s := lexer.New([]byte(`123 45.67 8.`))
	toks := s.Scan()
	require.False(t, s.HadError())
	require.Equal(t, "123", toks[0].Lexeme)
	require.Equal(t, "45.67", toks[1].Lexeme)
	// trailing dot with no following digit is not part of the number
	require.Equal(t, "8", toks[2].Lexeme)
	require.Equal(t, token.Dot, toks[3].Kind)
}

func TestScanLineComment(t *testing.T) {
	s := lexer.New([]byte("1 // a comment\n2"))
	toks := s.Scan()
	require.False(t, s.HadError())
	require.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(toks))
	require.Equal(t, 2, toks[1].Line)
}

func TestScanUnexpectedCharacterContinuesScanning(t *testing.T) {
	s := lexer.New([]byte("1 @ 2 $ 3"))
	toks := s.Scan()
	require.True(t, s.HadError())
	require.Len(t, s.Errors(), 2)
	require.Equal(t, []token.Kind{token.Number, token.Number, token.Number, token.EOF}, kinds(toks))
}

func TestLineTrackingAcrossNewlines(t *testing.T) {
	s := lexer.New([]byte("var a = 1;\nvar b = 2;\nvar c = 3;"))
	toks := s.Scan()
	require.False(t, s.HadError())
	require.Equal(t, 1, toks[0].Line)
	// "b" on line 2
	var found bool
	for _, tk := range toks {
		if tk.Lexeme == "b" {
			require.Equal(t, 2, tk.Line)
			found = true
		}
	}
	require.True(t, found)
}
