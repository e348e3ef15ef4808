package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/lexer"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, err := lexer.New(src).ScanTokens()
	require.NoError(t, err)
	stmts, err := New(toks).Parse()
	require.NoError(t, err)
	return stmts
}

func TestArithmeticPrecedenceParsesLeftAssociatively(t *testing.T) {
	stmts := parse(t, "1/2*3;")
	require.Len(t, stmts, 1)
	es, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	bin, ok := es.Expr.(*ast.BinaryExpr)
	require.True(t, ok, "expected top-level Binary(*) node")
	inner, ok := bin.Left.(*ast.BinaryExpr)
	require.True(t, ok, "expected (1/2) as the left operand of *")
	assert.Equal(t, "/", inner.Op.Lexeme)
	assert.Equal(t, "*", bin.Op.Lexeme)
}

func TestForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, "for (var i=0; i<3; i=i+1) print i;")
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, ok = block.Statements[0].(*ast.VarStmt)
	assert.True(t, ok, "initializer should be a VarStmt")
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	require.True(t, ok, "desugared for should produce a WhileStmt")
	bodyBlock, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok, "while body should be wrapped to append the increment")
	assert.Len(t, bodyBlock.Statements, 2)
}

func TestForWithMissingConditionDefaultsToTrue(t *testing.T) {
	stmts := parse(t, "for (;;) print 1;")
	require.Len(t, stmts, 1)
	// no initializer => for-desugar returns the While directly, unwrapped
	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok, "no initializer: top level stmt should already be the while")
	lit, ok := whileStmt.Condition.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, ast.LiteralBool, lit.Value.Kind)
	assert.True(t, lit.Value.Bool)
}

func TestInvalidAssignmentTarget(t *testing.T) {
	toks, err := lexer.New("1 = 2;").ScanTokens()
	require.NoError(t, err)
	_, err = New(toks).Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target")
}

func TestMissingSemicolonReportsLine(t *testing.T) {
	toks, err := lexer.New("print 1").ScanTokens()
	require.NoError(t, err)
	_, err = New(toks).Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestFunctionDeclarationParamLimit(t *testing.T) {
	src := "fun f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += fmt.Sprintf("p%d", i)
	}
	src += ") {}"
	toks, err := lexer.New(src).ScanTokens()
	require.NoError(t, err)
	_, err = New(toks).Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "255 parameters")
}

func TestParserIsDeterministic(t *testing.T) {
	src := "fun add(a, b) { return a + b; } print add(1, 2);"
	toks, err := lexer.New(src).ScanTokens()
	require.NoError(t, err)
	first, err := New(toks).Parse()
	require.NoError(t, err)
	second, err := New(toks).Parse()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPrintedFormIsStableAcrossParses(t *testing.T) {
	src := "1/2*3;"
	first := parse(t, src)[0].(*ast.ExpressionStmt)
	second := parse(t, src)[0].(*ast.ExpressionStmt)

	p := &ast.Printer{}
	want := "(* (/ 1 2) 3)"
	assert.Equal(t, want, p.Print(first.Expr))
	assert.Equal(t, p.Print(first.Expr), p.Print(second.Expr))
}

func TestCallIsLeftAssociative(t *testing.T) {
	stmts := parse(t, "f(1)(2);")
	es := stmts[0].(*ast.ExpressionStmt)
	outer, ok := es.Expr.(*ast.CallExpr)
	require.True(t, ok)
	_, ok = outer.Callee.(*ast.CallExpr)
	assert.True(t, ok, "f(1)(2) should nest as Call(Call(f,1),2)")
}
