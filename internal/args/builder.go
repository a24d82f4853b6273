// Package args builds process argument lists.
//
// A Builder is an append-only sequence of tokens. Each token is a literal, a quoted
// literal, or a secret. The same sequence renders three ways:
//   - Args: the exact argv handed to the spawned process
//   - String: a shell-safe command line with real values
//   - Redacted: the same command line with every secret masked, for logs and errors
package args

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Mask replaces secret values in redacted renderings
const Mask = "[REDACTED]"

// Kind tags how a token is rendered
type Kind int

const (
	// Literal tokens render verbatim
	Literal Kind = iota
	// Quoted tokens render inside double quotes so embedded whitespace survives splitting
	Quoted
	// Secret tokens render like Quoted but are masked in redacted output
	Secret
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Quoted:
		return "quoted"
	case Secret:
		return "secret"
	default:
		return "unknown"
	}
}

// Token is one process argument
type Token struct {
	Value string
	Kind  Kind
}

// Render returns the command-line form of the token with its real value
func (t Token) Render() string {
	if t.Kind == Literal {
		return t.Value
	}
	return Quote(t.Value)
}

// RenderSafe returns the command-line form of the token with secrets masked
func (t Token) RenderSafe() string {
	if t.Kind == Secret {
		return Mask
	}
	return t.Render()
}

// Builder accumulates tokens in order. The zero value is ready to use.
// A Builder is not safe for concurrent use; build one per invocation.
type Builder struct {
	tokens []Token
}

// New creates an empty Builder
func New() *Builder {
	return &Builder{}
}

// Append adds an unquoted literal
func (b *Builder) Append(value string) *Builder {
	b.tokens = append(b.tokens, Token{Value: value, Kind: Literal})
	return b
}

// AppendQuoted adds a value that is quoted when rendered as a command line
func (b *Builder) AppendQuoted(value string) *Builder {
	b.tokens = append(b.tokens, Token{Value: value, Kind: Quoted})
	return b
}

// AppendQuotedSecret adds a quoted value that is masked in redacted output
func (b *Builder) AppendQuotedSecret(value string) *Builder {
	b.tokens = append(b.tokens, Token{Value: value, Kind: Secret})
	return b
}

// AppendTokens adds already-tagged tokens
func (b *Builder) AppendTokens(tokens ...Token) *Builder {
	b.tokens = append(b.tokens, tokens...)
	return b
}

// Prepend inserts an unquoted literal before every existing token
func (b *Builder) Prepend(value string) *Builder {
	b.tokens = append([]Token{{Value: value, Kind: Literal}}, b.tokens...)
	return b
}

// Len returns the number of tokens
func (b *Builder) Len() int {
	return len(b.tokens)
}

// Tokens returns a copy of the token sequence
func (b *Builder) Tokens() []Token {
	out := make([]Token, len(b.tokens))
	copy(out, b.tokens)
	return out
}

// Args returns the argv for the spawned process: real values, no quoting
func (b *Builder) Args() []string {
	out := make([]string, len(b.tokens))
	for i, t := range b.tokens {
		out[i] = t.Value
	}
	return out
}

// String renders the command line with real values
func (b *Builder) String() string {
	parts := make([]string, len(b.tokens))
	for i, t := range b.tokens {
		parts[i] = t.Render()
	}
	return strings.Join(parts, " ")
}

// Redacted renders the command line with every secret replaced by Mask
func (b *Builder) Redacted() string {
	parts := make([]string, len(b.tokens))
	for i, t := range b.tokens {
		parts[i] = t.RenderSafe()
	}
	return strings.Join(parts, " ")
}

// Quote wraps value in double quotes, escaping the characters a POSIX shell
// still interprets inside them
func Quote(value string) string {
	var sb strings.Builder
	sb.Grow(len(value) + 2)
	sb.WriteByte('"')
	for _, r := range value {
		switch r {
		case '\\', '"', '$', '`':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('"')
	return sb.String()
}

// Parse splits a user-supplied command line into literal tokens using POSIX shell rules
func Parse(commandLine string) ([]Token, error) {
	words, err := shellquote.Split(commandLine)
	if err != nil {
		return nil, err
	}
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Value: w, Kind: Literal}
	}
	return tokens, nil
}
