package zmin

import "fmt"

// MaxNestingDepth is the maximum number of nested containers the engine
// accepts. Deeper input fails with ErrTooDeep instead of growing the
// container stack without bound.
const MaxNestingDepth = 10000

// Valid reports whether data is a single well-formed JSON value surrounded
// by nothing but whitespace. It performs one left-to-right scan in O(n)
// time and O(depth) auxiliary space, allocates no output, and never panics.
func Valid(data []byte) bool {
	return check(data) == nil
}

// check runs the full grammar scan and returns the earliest violation.
func check(data []byte) error {
	tz := NewTokenizer(data)
	var g grammar
	for {
		tok, err := tz.Next()
		if err != nil {
			return err
		}
		if tok.Kind == KindEOF {
			return g.finish(tok.Start)
		}
		if err := g.push(tok); err != nil {
			return err
		}
	}
}

// container identifies an open object or array on the nesting stack.
type container uint8

const (
	containerObject container = iota
	containerArray
)

// gstate is the grammar automaton's expectation for the next token.
type gstate uint8

const (
	stateValue        gstate = iota // expecting a value
	stateValueOrClose               // expecting a value or ']' (just after '[')
	stateKeyOrClose                 // expecting a key or '}' (just after '{')
	stateKey                        // expecting a key (after ',' in an object)
	stateColon                      // expecting ':' after a key
	stateCommaOrClose               // expecting ',' or the container close
	stateDone                       // top-level value complete, only EOF may follow
)

// grammar verifies JSON structure across a token stream. The zero value is
// ready to use; strategies drive one grammar per pass while emitting, so a
// combined validate+minify scan never tokenizes twice.
type grammar struct {
	stack []container
	state gstate
}

// push feeds the next token to the automaton.
func (g *grammar) push(tok Token) error {
	switch g.state {
	case stateValue, stateValueOrClose:
		switch tok.Kind {
		case KindString, KindNumber, KindTrue, KindFalse, KindNull:
			g.valueDone()
		case KindLBrace:
			if err := g.open(containerObject, tok.Start); err != nil {
				return err
			}
			g.state = stateKeyOrClose
		case KindLBracket:
			if err := g.open(containerArray, tok.Start); err != nil {
				return err
			}
			g.state = stateValueOrClose
		case KindRBracket:
			if g.state != stateValueOrClose {
				return &SyntaxError{Msg: "expected value", Offset: tok.Start}
			}
			g.stack = g.stack[:len(g.stack)-1]
			g.valueDone()
		default:
			return &SyntaxError{Msg: "expected value", Offset: tok.Start}
		}

	case stateKeyOrClose:
		switch tok.Kind {
		case KindString:
			g.state = stateColon
		case KindRBrace:
			g.stack = g.stack[:len(g.stack)-1]
			g.valueDone()
		default:
			return &SyntaxError{Msg: "expected object key or '}'", Offset: tok.Start}
		}

	case stateKey:
		if tok.Kind != KindString {
			return &SyntaxError{Msg: "expected object key", Offset: tok.Start}
		}
		g.state = stateColon

	case stateColon:
		if tok.Kind != KindColon {
			return &SyntaxError{Msg: "expected ':' after object key", Offset: tok.Start}
		}
		g.state = stateValue

	case stateCommaOrClose:
		top := g.stack[len(g.stack)-1]
		switch {
		case tok.Kind == KindComma:
			if top == containerObject {
				g.state = stateKey
			} else {
				g.state = stateValue
			}
		case tok.Kind == KindRBrace && top == containerObject:
			g.stack = g.stack[:len(g.stack)-1]
			g.valueDone()
		case tok.Kind == KindRBracket && top == containerArray:
			g.stack = g.stack[:len(g.stack)-1]
			g.valueDone()
		default:
			return &SyntaxError{Msg: "expected ',' or container close", Offset: tok.Start}
		}

	case stateDone:
		return &SyntaxError{Msg: "unexpected data after top-level value", Offset: tok.Start}
	}

	return nil
}

// finish reports whether the stream may end here.
func (g *grammar) finish(offset int) error {
	if g.state != stateDone {
		return &SyntaxError{Msg: "unexpected end of JSON input", Offset: offset}
	}
	return nil
}

// open pushes a container, enforcing the depth limit.
func (g *grammar) open(c container, offset int) error {
	if len(g.stack) >= MaxNestingDepth {
		return fmt.Errorf("%w at offset %d (max %d)", ErrTooDeep, offset, MaxNestingDepth)
	}
	g.stack = append(g.stack, c)
	return nil
}

// valueDone records a completed value and sets the follow-up expectation.
func (g *grammar) valueDone() {
	if len(g.stack) == 0 {
		g.state = stateDone
	} else {
		g.state = stateCommaOrClose
	}
}
