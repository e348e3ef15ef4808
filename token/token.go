// Package token stores token information for the glox scanner and parser.
package token

import "fmt"

// Type is an "enum-like" wrapper for the token kind constants below.
type Type int

// Each token kind is assigned a unique int value, following the teacher's
// tokentypes.go layout: single-character tokens, one-or-two-character
// tokens, literals, keywords, then EOF.
const (
	// single character tokens
	LeftParen Type = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// one or two character tokens
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// end of file
	EOF
)

var names = map[Type]string{
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	Comma: ",", Dot: ".", Minus: "-", Plus: "+", Semicolon: ";", Slash: "/", Star: "*",
	Bang: "!", BangEqual: "!=", Equal: "=", EqualEqual: "==",
	Greater: ">", GreaterEqual: ">=", Less: "<", LessEqual: "<=",
	Identifier: "<IDENTIFIER>", String: "<STRING>", Number: "<NUMBER>",
	And: "and", Class: "class", Else: "else", False: "false", Fun: "fun",
	For: "for", If: "if", Nil: "nil", Or: "or", Print: "print", Return: "return",
	Super: "super", This: "this", True: "true", Var: "var", While: "while",
	EOF: "<EOF>",
}

// String renders a Type the way the teacher's Token.String renders token kinds.
func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Keywords maps reserved-word lexemes to their Type, checked by the lexer
// after scanning an identifier run.
var Keywords = map[string]Type{
	"and": And, "class": Class, "else": Else, "false": False, "for": For,
	"fun": Fun, "if": If, "nil": Nil, "or": Or, "print": Print, "return": Return,
	"super": Super, "this": This, "true": True, "var": Var, "while": While,
}

// Token is a tagged (kind, line) pair, plus whatever lexeme/literal payload
// its kind carries. Lines are 1-indexed.
type Token struct {
	Type    Type
	Lexeme  string
	Line    int
	Number  float64 // only meaningful when Type == Number
	Literal string  // only meaningful when Type == String or Type == Identifier
}

// New builds a Token with no literal payload.
func New(typ Type, lexeme string, line int) Token {
	return Token{Type: typ, Lexeme: lexeme, Line: line}
}

// NewNumber builds a Number token carrying its parsed float64 value.
func NewNumber(lexeme string, value float64, line int) Token {
	return Token{Type: Number, Lexeme: lexeme, Line: line, Number: value}
}

// NewString builds a String token carrying its unquoted text.
func NewString(lexeme, value string, line int) Token {
	return Token{Type: String, Lexeme: lexeme, Line: line, Literal: value}
}

// NewIdentifier builds an Identifier token; Literal mirrors Lexeme for
// convenience at call sites that only have the token.
func NewIdentifier(lexeme string, line int) Token {
	return Token{Type: Identifier, Lexeme: lexeme, Line: line, Literal: lexeme}
}

// String gives a human-readable representation, mirroring the teacher's
// Token.String debug format.
func (t Token) String() string {
	lexeme := t.Lexeme
	if t.Type == EOF {
		lexeme = "EOF"
	}
	return fmt.Sprintf("[TOKEN: %-5v %-10q line %d]", t.Type, lexeme, t.Line)
}
