package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func source(t *testing.T, code string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "prog.cm")
	be.Err(t, os.WriteFile(fn, []byte(code), 0o644), nil)
	return fn
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	t.Logf("stdout:\n%s", stdout)
	t.Logf("stderr:\n%s", stderr)
	return stdout.String(), stderr.String(), err
}

const good = `int gcd(int u, int v)
{
	if (v == 0) return u;
	else return gcd(v, u - u / v * v);
}

void main(void)
{
	int x; int y;
	x = input(); y = input();
	output(gcd(x, y));
}
`

const bad = `int x;
int x;
void main(void)
{
	int a[4];
	output(a);
	return 1;
}
`

func TestCheckClean(t *testing.T) {
	out, _, err := run(t, "", "check", source(t, good))
	be.Err(t, err, nil)
	be.Equal(t, out, "")
}

func TestCheckErrors(t *testing.T) {
	out, _, err := run(t, "", "check", source(t, bad))
	be.True(t, errors.Is(err, errAnalysisFailed))
	be.Equal(t, out,
		"Error: Symbol \"x\" is redefined at line 2 (already defined at line 1)\n"+
			"Error: Invalid function call at line 6 (name : \"output\")\n"+
			"Error: Invalid return at line 7\n")
}

func TestCheckVerbose(t *testing.T) {
	out, _, err := run(t, "", "check", "-v", source(t, bad))
	be.True(t, errors.Is(err, errAnalysisFailed))
	be.True(t, strings.Contains(out, "[] "))
	be.True(t, strings.Contains(out, "prog.cm:7: invalid return"))
}

func TestCheckListingFile(t *testing.T) {
	listing := filepath.Join(t.TempDir(), "listing.txt")
	out, _, err := run(t, "", "check", "--listing", listing, source(t, bad))
	be.True(t, errors.Is(err, errAnalysisFailed))
	be.Equal(t, out, "")
	got, rerr := os.ReadFile(listing)
	be.Err(t, rerr, nil)
	be.True(t, strings.HasPrefix(string(got), "Error: Symbol \"x\""))
}

func TestCheckTrace(t *testing.T) {
	out, _, err := run(t, "", "check", "--trace", source(t, good))
	be.Err(t, err, nil)
	for _, title := range []string{"< Symbol Table >", "< Functions >", "< Global Symbols >", "< Scopes >"} {
		be.True(t, strings.Contains(out, title))
	}
	be.True(t, strings.Contains(out, "gcd"))
}

func TestCheckRefusesParseErrors(t *testing.T) {
	out, stderr, err := run(t, "", "check", source(t, "int x\nvoid f(void) {}"))
	be.True(t, errors.Is(err, errFrontend))
	be.Equal(t, out, "")
	be.True(t, strings.Contains(stderr, "error: parse:"))
}

func TestCheckMissingFile(t *testing.T) {
	_, _, err := run(t, "", "check", filepath.Join(t.TempDir(), "nope.cm"))
	be.True(t, err != nil)
	be.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLex(t *testing.T) {
	out, _, err := run(t, "", "lex", source(t, "int a[10];"))
	be.Err(t, err, nil)
	be.Equal(t, len(strings.Split(strings.TrimSpace(out), "\n")), 6)
	be.True(t, strings.HasPrefix(out, "[1:1] \"int\"\n[1:5] a\n"))
}

func TestLexErrors(t *testing.T) {
	_, stderr, err := run(t, "", "lex", source(t, "int a @ 1;"))
	be.True(t, errors.Is(err, errFrontend))
	be.True(t, strings.Contains(stderr, "error: lex:"))
}

func TestParse(t *testing.T) {
	out, _, err := run(t, "", "parse", source(t, "int x;\nvoid f(void) { x = 1; }"))
	be.Err(t, err, nil)
	be.True(t, strings.Contains(out, "{0}\n VariableDecl \"x\" int\n"))
	be.True(t, strings.Contains(out, ". . . .  AssignExpr\n"))
	be.True(t, !strings.Contains(out, " : "))
}

func TestParseTypes(t *testing.T) {
	out, _, err := run(t, "", "parse", "--types", source(t, "int x[3];\nvoid f(void) { x[0] = x[1] + 1; }"))
	be.Err(t, err, nil)
	be.True(t, strings.Contains(out, "BinOpExpr + : int\n"))
	be.True(t, strings.Contains(out, "VarAccessExpr \"x\" : int\n"))
	be.True(t, strings.Contains(out, "FunctionDecl \"f\" returns void : void\n"))
}

func TestRepl(t *testing.T) {
	out, stderr, err := run(t, "int x; int x;\n\nvoid f(void) { }\n", "repl")
	be.Err(t, err, nil)
	be.True(t, strings.Contains(out, "[0] >> "))
	be.True(t, strings.Contains(out, "[2] >> "))
	be.Equal(t, strings.Count(out, "Error: "), 1)
	be.True(t, strings.Contains(stderr, errAnalysisFailed.Error()))
}
