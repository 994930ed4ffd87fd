// Package lexer turns Minipar source text into a token stream.
//
// The scanner is a single ordered alternation, the same shape as the
// reference implementation: each iteration matches the longest prefix of
// the remaining input against the first pattern (in declaration order) that
// matches at all, advances past it, and either emits a token or silently
// consumes it (whitespace, comments, newlines).
package lexer

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/minipar-lang/minipar/compiler/token"
)

// pattern order matters: first-match-wins among alternatives that both
// match at the current position, longest-match within a single alternative.
const tokenPattern = `^(?P<NAME>[A-Za-z_][A-Za-z0-9_]*)` +
	`|^(?P<NUMBER>\d+\.\d+|\.\d+|\d+)` +
	`|^(?P<RARROW>->)` +
	`|^(?P<STRING>"[^"]*")` +
	`|^(?P<SCOMMENT>#[^\n]*)` +
	`|^(?P<MCOMMENT>/\*[\s\S]*?\*/)` +
	`|^(?P<OR>\|\|)` +
	`|^(?P<AND>&&)` +
	`|^(?P<EQ>==)` +
	`|^(?P<NEQ>!=)` +
	`|^(?P<LTE><=)` +
	`|^(?P<GTE>>=)` +
	`|^(?P<NEWLINE>\n)` +
	`|^(?P<WHITESPACE>[ \t\r]+)` +
	`|^(?P<OTHER>.)`

var tokenRegex = regexp.MustCompile(tokenPattern)

// LexError reports a problem the lexer noticed while scanning. Per spec,
// scanning itself never aborts: LexError is advisory, collected for callers
// that want to surface it (e.g. an unterminated string falls through to
// OTHER character-by-character instead of raising).
type LexError struct {
	Message string
	Line    int
}

func (e LexError) Error() string {
	return e.Message
}

// Lexer scans a full source buffer into tokens, tracking a line counter
// alongside each token as required by invariant 1 in spec.md §8.
type Lexer struct {
	source string
	line   int
	log    *zap.SugaredLogger

	tokens []token.Token
	errors []LexError
}

// New creates a Lexer over source. log may be nil, in which case a no-op
// logger is used.
func New(source string, log *zap.SugaredLogger) *Lexer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Lexer{
		source: source,
		line:   1,
		log:    log,
		tokens: make([]token.Token, 0, len(source)/4+1),
	}
}

// ScanTokens scans the entire source and returns every token (terminated by
// a synthesized EOF) plus any collected LexErrors.
func (l *Lexer) ScanTokens() ([]token.Token, []LexError) {
	rest := l.source
	for len(rest) > 0 {
		loc := tokenRegex.FindStringSubmatchIndex(rest)
		if loc == nil {
			// tokenRegex always matches via OTHER; this is unreachable but
			// guards against an infinite loop if that invariant ever breaks.
			l.addError("internal: no token pattern matched")
			break
		}
		matchEnd := loc[1]
		lexeme := rest[:matchEnd]
		l.consume(lexeme)
		rest = rest[matchEnd:]
	}

	l.tokens = append(l.tokens, token.EOFToken(l.line))
	return l.tokens, l.errors
}

// consume classifies one matched lexeme and appends a token (or updates line
// tracking / drops it silently) per the post-processing rules in spec §4.1.
func (l *Lexer) consume(lexeme string) {
	switch {
	case isIdentLexeme(lexeme):
		l.scanIdentifier(lexeme)
	case isNumberLexeme(lexeme):
		l.tokens = append(l.tokens, token.Token{Tag: token.NUMBER, Value: lexeme, Line: l.line})
	case lexeme == "->":
		l.tokens = append(l.tokens, token.Token{Tag: token.RARROW, Value: lexeme, Line: l.line})
	case len(lexeme) >= 2 && strings.HasPrefix(lexeme, `"`):
		l.tokens = append(l.tokens, token.Token{Tag: token.STRING, Value: strings.Trim(lexeme, `"`), Line: l.line})
	case strings.HasPrefix(lexeme, "#"):
		// single-line comment: skipped
	case strings.HasPrefix(lexeme, "/*"):
		l.line += strings.Count(lexeme, "\n")
	case lexeme == "\n":
		l.line++
	case lexeme == " " || lexeme == "\t" || lexeme == "\r" || isBlank(lexeme):
		// whitespace run: skipped
	case lexeme == "||":
		l.tokens = append(l.tokens, token.Token{Tag: token.OR, Value: lexeme, Line: l.line})
	case lexeme == "&&":
		l.tokens = append(l.tokens, token.Token{Tag: token.AND, Value: lexeme, Line: l.line})
	case lexeme == "==":
		l.tokens = append(l.tokens, token.Token{Tag: token.EQ, Value: lexeme, Line: l.line})
	case lexeme == "!=":
		l.tokens = append(l.tokens, token.Token{Tag: token.NEQ, Value: lexeme, Line: l.line})
	case lexeme == "<=":
		l.tokens = append(l.tokens, token.Token{Tag: token.LTE, Value: lexeme, Line: l.line})
	case lexeme == ">=":
		l.tokens = append(l.tokens, token.Token{Tag: token.GTE, Value: lexeme, Line: l.line})
	default:
		l.scanOther(lexeme)
	}
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\r' {
			return false
		}
	}
	return len(s) > 0
}

func isIdentLexeme(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[0])
	if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_') {
		return false
	}
	for _, c := range s {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
			return false
		}
	}
	return true
}

func isNumberLexeme(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != '.' && (c < '0' || c > '9') {
			return false
		}
	}
	return strings.ContainsAny(s, "0123456789")
}

// scanIdentifier folds a NAME lexeme to its keyword tag, or emits ID.
func (l *Lexer) scanIdentifier(lexeme string) {
	if tag, ok := lookupKeyword(lexeme); ok {
		l.tokens = append(l.tokens, token.Token{Tag: tag, Value: lexeme, Line: l.line})
		return
	}
	l.tokens = append(l.tokens, token.Token{Tag: token.ID, Value: lexeme, Line: l.line})
}

// singleCharTags maps the single characters the grammar actually cares
// about to their dedicated tag. Anything else falls through to OTHER, with
// the character itself preserved as the token's value (per spec, lexing
// never fails outright on unscannable input).
var singleCharTags = map[byte]token.Tag{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.STAR,
	'/': token.SLASH,
	'%': token.PERCENT,
	'<': token.LT,
	'>': token.GT,
	'=': token.ASSIGN,
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
	'[': token.LBRACKET,
	']': token.RBRACKET,
	',': token.COMMA,
	':': token.COLON,
	'.': token.DOT,
	'!': token.BANG,
}

func (l *Lexer) scanOther(lexeme string) {
	if len(lexeme) != 1 {
		l.addError("unexpected multi-byte OTHER match: " + strconv.Quote(lexeme))
		return
	}
	if tag, ok := singleCharTags[lexeme[0]]; ok {
		l.tokens = append(l.tokens, token.Token{Tag: tag, Value: lexeme, Line: l.line})
		return
	}
	l.tokens = append(l.tokens, token.Token{Tag: token.OTHER, Value: lexeme, Line: l.line})
}

func (l *Lexer) addError(msg string) {
	l.log.Debugw("lex error", "message", msg, "line", l.line)
	l.errors = append(l.errors, LexError{Message: msg, Line: l.line})
}
