package lexer

import "github.com/minipar-lang/minipar/compiler/token"

// keywords maps reserved identifiers to their token tag for O(1) lookup once
// an identifier has been scanned. Anything not in this table is a plain ID.
var keywords = map[string]token.Tag{
	"number": token.TYPE,
	"string": token.TYPE,
	"bool":   token.TYPE,
	"void":   token.TYPE,

	"true":  token.TRUE,
	"false": token.FALSE,

	"func":      token.FUNC,
	"while":     token.WHILE,
	"if":        token.IF,
	"else":      token.ELSE,
	"return":    token.RETURN,
	"break":     token.BREAK,
	"continue":  token.CONTINUE,
	"par":       token.PAR,
	"seq":       token.SEQ,
	"c_channel": token.C_CHANNEL,
	"s_channel": token.S_CHANNEL,
}

// lookupKeyword reports the reserved tag for an identifier, if any.
func lookupKeyword(identifier string) (token.Tag, bool) {
	tag, ok := keywords[identifier]
	return tag, ok
}
