package args_test

import (
	"strings"
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrench.dev/wrench/internal/args"
)

func TestBuilderPreservesOrder(t *testing.T) {
	b := args.New().
		Append("label").
		Append("--token").
		AppendQuotedSecret("tkn123").
		Append("-o").
		AppendQuoted("foo")

	require.Equal(t, 5, b.Len())
	require.Equal(t, []string{"label", "--token", "tkn123", "-o", "foo"}, b.Args())
	require.Equal(t, `label --token "tkn123" -o "foo"`, b.String())
	require.Equal(t, `label --token [REDACTED] -o "foo"`, b.Redacted())
}

func TestZeroValueBuilder(t *testing.T) {
	var b args.Builder
	require.Empty(t, b.Args())
	require.Equal(t, "", b.String())

	b.Append("x")
	require.Equal(t, []string{"x"}, b.Args())
}

func TestPrepend(t *testing.T) {
	b := args.New().Append("build-server").Append("shutdown")
	b.Prepend("--diagnostics")
	require.Equal(t, []string{"--diagnostics", "build-server", "shutdown"}, b.Args())
}

func TestTokensReturnsCopy(t *testing.T) {
	b := args.New().Append("a")
	tokens := b.Tokens()
	tokens[0].Value = "mutated"
	require.Equal(t, []string{"a"}, b.Args())
}

func TestQuotedRoundTrip(t *testing.T) {
	values := []string{
		"simple",
		"with space",
		"  leading and trailing  ",
		"tab\tseparated",
		`double "quotes" inside`,
		"single 'quotes' inside",
		`back\slash`,
		"$HOME and `cmd`",
		"multi\nline",
		"",
		"C:\\Program Files\\GitReleaseManager",
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			b := args.New().AppendQuoted(v)
			words, err := shellquote.Split(b.String())
			require.NoError(t, err)
			require.Equal(t, []string{v}, words)

			s := args.New().AppendQuotedSecret(v)
			require.Equal(t, b.String(), s.String(), "secrets render like quoted values for execution")
		})
	}
}

func TestSecretNeverAppearsInRedactedOutput(t *testing.T) {
	secrets := []string{"hunter22", "p@ss word", "ghp_0123456789abcdef", `tricky"secret`}

	for _, secret := range secrets {
		b := args.New().Append("-p").AppendQuotedSecret(secret)

		assert.NotContains(t, b.Redacted(), secret)
		assert.Equal(t, "-p "+args.Mask, b.Redacted())
		assert.Equal(t, []string{"-p", secret}, b.Args())
	}
}

func TestParse(t *testing.T) {
	tokens, err := args.Parse(`--verbose --name "two words" 'single quoted'`)
	require.NoError(t, err)

	values := make([]string, len(tokens))
	for i, tok := range tokens {
		require.Equal(t, args.Literal, tok.Kind)
		values[i] = tok.Value
	}
	require.Equal(t, []string{"--verbose", "--name", "two words", "single quoted"}, values)

	_, err = args.Parse(`"unterminated`)
	require.Error(t, err)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "literal", args.Literal.String())
	require.Equal(t, "quoted", args.Quoted.String())
	require.Equal(t, "secret", args.Secret.String())
	require.True(t, strings.HasPrefix(args.Kind(99).String(), "unknown"))
}
