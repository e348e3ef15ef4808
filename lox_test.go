package lox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	out, err := RunWithOutput(src, nil)
	require.NoError(t, err)
	return out
}

func TestHelloUnicode(t *testing.T) {
	assert.Equal(t, "Hello, 世界\n", run(t, `print "Hello, 世界";`))
}

func TestArithmeticPrecedence(t *testing.T) {
	assert.Equal(t, "7\n", run(t, "print 1 + 2 * 3;"))
}

func TestScopes(t *testing.T) {
	src := `
var a="global";
{ var a="local"; print a; }
print a;
`
	assert.Equal(t, "local\nglobal\n", run(t, src))
}

func TestClosuresAndCounter(t *testing.T) {
	src := `
fun makeCounter(){ var i=0; fun c(){ i=i+1; print i; } return c; }
var c1=makeCounter(); c1(); c1();
var c2=makeCounter(); c2(); c1();
`
	assert.Equal(t, "1\n2\n1\n3\n", run(t, src))
}

func TestRecursiveFibonacci(t *testing.T) {
	src := `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
for (var i = 0; i < 21; i = i + 1) print fib(i);
`
	want := []string{
		"0", "1", "1", "2", "3", "5", "8", "13", "21", "34", "55", "89",
		"144", "233", "377", "610", "987", "1597", "2584", "4181", "6765",
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", run(t, src))
}

func TestForLoopDesugar(t *testing.T) {
	assert.Equal(t, "0\n1\n2\n", run(t, "for (var i=0; i<3; i=i+1) print i;"))
}

func TestAssignmentVisibilityThroughClosure(t *testing.T) {
	src := `
var x=0;
fun f(){x=x+1;}
f(); f();
print x;
`
	assert.Equal(t, "2\n", run(t, src))
}

func TestShortCircuitOr(t *testing.T) {
	src := `
fun sideEffect() { print "called"; return true; }
var result = true or sideEffect();
`
	assert.Equal(t, "", run(t, src))
}

func TestShortCircuitAnd(t *testing.T) {
	src := `
fun sideEffect() { print "called"; return true; }
var result = false and sideEffect();
`
	assert.Equal(t, "", run(t, src))
}

func TestReturnDisciplineImplicitNilReturn(t *testing.T) {
	withoutReturn := `fun f() { print "hi"; } f();`
	withReturn := `fun f() { print "hi"; return nil; } f();`
	assert.Equal(t, run(t, withoutReturn), run(t, withReturn))
}

func TestZeroIsFalsy(t *testing.T) {
	assert.Equal(t, "zero\n", run(t, `if (0) { print "nonzero"; } else { print "zero"; }`))
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := RunWithOutput("print x;", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable")
}

func TestWrongArityIsRuntimeError(t *testing.T) {
	_, err := RunWithOutput("fun f(a,b){} f(1);", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1")
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := RunWithOutput(`var x = 1; x();`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes")
}

func TestNaNIsNotEqualToItself(t *testing.T) {
	out, err := RunWithOutput(`print (0/0 == 0/0);`, nil)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestStringConcatenation(t *testing.T) {
	assert.Equal(t, "helloworld\n", run(t, `print "hello" + "world";`))
}

func TestInvalidOperandTypeIsRuntimeError(t *testing.T) {
	_, err := RunWithOutput(`print "a" - 1;`, nil)
	require.Error(t, err)
}

func TestUnterminatedStringIsLexicalError(t *testing.T) {
	_, err := RunWithOutput(`print "unterminated;`, nil)
	require.Error(t, err)
}

func TestMissingTokenIsSyntacticError(t *testing.T) {
	_, err := RunWithOutput(`print 1`, nil)
	require.Error(t, err)
}

func TestNativeClockIsCallable(t *testing.T) {
	out, err := RunWithOutput(`print clock() >= 0;`, nil)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}
