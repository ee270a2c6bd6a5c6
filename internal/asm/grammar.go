package asm

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// source is the top level AST node, one entry per source line.
type source struct {
	Lines []*line `parser:"@@*"`
}

// line is an optional label followed by an optional statement.
type line struct {
	Pos       lexer.Position
	Label     *string    `parser:"( @Ident \":\" )?"`
	Statement *statement `parser:"@@? EOL"`
}

// statement is either an assembler directive or an instruction.
type statement struct {
	Directive   *directive `parser:"  @@"`
	Instruction *command   `parser:"| @@"`
}

// directive: .org $200, .byte $01, $02
type directive struct {
	Pos       lexer.Position
	Name      string     `parser:"@Directive"`
	Arguments []*operand `parser:"( @@ ( \",\" @@ )* )?"`
}

// command: mnemonic operand, operand, ...
type command struct {
	Pos      lexer.Position
	Mnemonic string     `parser:"@Ident"`
	Operands []*operand `parser:"( @@ ( \",\" @@ )* )?"`
}

// operand is a number, an identifier (register, keyword or label) or the
// indirect [I] memory operand.
type operand struct {
	Pos      lexer.Position
	Indirect *string `parser:"(  \"[\" @Ident \"]\""`
	Number   *string `parser:"| @Number"`
	Ident    *string `parser:"| @Ident )"`
}

var chip8Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Directive", Pattern: `\.[a-zA-Z]+`},
	{Name: "Number", Pattern: `\$[0-9a-fA-F]+|0[xX][0-9a-fA-F]+|[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[:,\[\]]`},
})

var parser = participle.MustBuild[source](
	participle.Lexer(chip8Lexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)
