/*
Package parser implements the clove grammar as a recursive-descent parser
over the lexer's token stream.

	program := <node>* EOF
	node    := <atom> | <ident> | <list> | <call>
	list    := '[' <node>* ']'
	call    := '(' <ident> <node>* ')'
	atom    := <number> | <string> | <bool>
*/
package parser

import (
	"strconv"

	"github.com/clove-lang/clove/lisp"
	"github.com/clove-lang/clove/parser/lexer"
	"github.com/clove-lang/clove/parser/token"
)

type reader struct{}

// NewReader returns a lisp.Reader to use with a lisp.Interp.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, source string) (*lisp.Node, error) {
	return ParseSource(name, source)
}

// NewInterpreter returns a lisp.Interp wired with this package's reader.
func NewInterpreter(globals *lisp.Scope, cfgs ...lisp.Config) (*lisp.Interp, error) {
	cfgs = append([]lisp.Config{lisp.WithReader(NewReader())}, cfgs...)
	return lisp.NewInterpreter(globals, cfgs...)
}

// ParseSource tokenizes and parses a unit of source text.
func ParseSource(name string, source string) (*lisp.Node, error) {
	toks, err := lexer.Tokenize(name, source)
	if err != nil {
		return nil, err
	}
	return New(toks).Parse()
}

// Parser is an LL(1) parser over a token sequence.  It is a pure function of
// its input: parsing the same tokens twice yields structurally equal trees.
type Parser struct {
	toks []*token.Token
	pos  int
}

// New initializes and returns a Parser reading toks.
func New(toks []*token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses a complete program.  The returned node is always NProgram
// with a non-empty node list terminated by the EOF sentinel.
func (p *Parser) Parse() (*lisp.Node, error) {
	return p.ParseProgram()
}

// ParseProgram parses nodes until the token stream is exhausted and verifies
// the sentinel invariant.
func (p *Parser) ParseProgram() (*lisp.Node, error) {
	var nodes []*lisp.Node
	for p.pos < len(p.toks) {
		node, err := p.ParseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if len(nodes) == 0 || nodes[len(nodes)-1].Type != lisp.NEOF {
		return nil, p.errorf(BadProgram, nil, "program does not end with EOF")
	}
	return lisp.Program(nodes), nil
}

// ParseNode parses a single node, dispatching on the current token.
func (p *Parser) ParseNode() (*lisp.Node, error) {
	tok := p.curr()
	switch tok.Type {
	case token.EOF:
		p.pos++
		return lisp.EOF(), nil
	case token.NUMBER:
		p.pos++
		x, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			// The lexer validated the literal; reaching this means the token
			// stream was constructed by hand.
			return nil, p.errorf(UnexpectedToken, tok, "invalid number literal %q", tok.Text)
		}
		return lisp.Atom(lisp.Number(x)), nil
	case token.STRING:
		p.pos++
		return lisp.Atom(lisp.String(tok.Text)), nil
	case token.BOOL:
		p.pos++
		return lisp.Atom(lisp.Bool(tok.Text == "true")), nil
	case token.IDENT:
		p.pos++
		return lisp.Variable(tok.Text), nil
	case token.BRACKET_L:
		p.pos++
		return p.parseList()
	case token.PAREN_L:
		p.pos++
		return p.parseCall()
	default:
		p.pos++
		return nil, p.errorf(UnexpectedToken, tok, "unexpected %s", tok)
	}
}

// parseList parses nodes up to the matching close bracket and wraps them as
// a list-literal atom.
func (p *Parser) parseList() (*lisp.Node, error) {
	var nodes []*lisp.Node
	for p.curr().Type != token.BRACKET_R {
		node, err := p.ParseNode()
		if err != nil {
			return nil, err
		}
		if node.Type == lisp.NEOF {
			return nil, p.errorf(UnexpectedEOF, p.curr(), "unterminated list literal")
		}
		nodes = append(nodes, node)
	}
	p.pos++
	return lisp.Atom(lisp.List(nodes)), nil
}

// parseCall parses an identifier in callee position followed by argument
// nodes up to the matching close paren.
func (p *Parser) parseCall() (*lisp.Node, error) {
	nameNode, err := p.ParseNode()
	if err != nil {
		return nil, err
	}
	if nameNode.Type == lisp.NEOF {
		return nil, p.errorf(UnexpectedEOF, p.curr(), "unterminated function call")
	}
	if nameNode.Type != lisp.NVariable {
		return nil, p.errorf(UnexpectedToken, p.curr(), "%s is not an identifier", nameNode)
	}

	var args []*lisp.Node
	for p.curr().Type != token.PAREN_R {
		node, err := p.ParseNode()
		if err != nil {
			return nil, err
		}
		if node.Type == lisp.NEOF {
			return nil, p.errorf(UnexpectedEOF, p.curr(), "unterminated function call")
		}
		args = append(args, node)
	}
	p.pos++
	return lisp.FunctionCall(nameNode.Name, args), nil
}

// curr returns the current token.  A well-formed stream ends with an EOF
// token; if the stream was truncated curr synthesizes one so productions
// still observe the end of input.
func (p *Parser) curr() *token.Token {
	if p.pos >= len(p.toks) {
		return &token.Token{Type: token.EOF}
	}
	return p.toks[p.pos]
}
