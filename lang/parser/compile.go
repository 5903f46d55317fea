// LKit -- a simple, embeddable expression language
// Copyright (C) 2012+ the LKit project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package parser

import (
	"strconv"
	"strings"

	"github.com/drbobbeaty/LKit/lang/ast"
	"github.com/drbobbeaty/LKit/lang/interfaces"
	"github.com/drbobbeaty/LKit/lang/types"
	"github.com/drbobbeaty/LKit/util/errwrap"
)

// Compile turns the source code of this parser into an evaluation tree. It is
// idempotent: once a tree exists, nothing happens until SetSource drops it.
// The source may hold several whitespace-separated top-level forms; they are
// parsed in textual order, each one but the last is evaluated right here for
// its side effects (usually a `set`), and the last one becomes the root. A
// compile error aborts before the root is set, so the caller can fix the
// source and retry. The function table is not touched, but the work the
// failed parse already did is not undone: placeholder variables it created
// stay in the table, `set` forms it got through have already assigned or
// bound their variables, and the constants and sub-expressions it parsed stay
// in the pools until the next SetSource.
func (obj *Parser) Compile() error {
	obj.srcMutex.Lock()
	defer obj.srcMutex.Unlock()
	if obj.root != nil {
		return nil // already compiled
	}

	sc := &scanner{src: obj.src}
	nodes := []interfaces.Node{}
	for sc.skipToParen() {
		node, err := obj.parseExpr(sc)
		if err != nil {
			return err
		}
		nodes = append(nodes, node)
	}
	if len(nodes) == 0 {
		return interfaces.ErrParseNoExpression
	}

	// the earlier forms run once, now, for their side effects
	for _, n := range nodes[0 : len(nodes)-1] {
		n.Eval()
	}
	obj.root = nodes[len(nodes)-1]
	if obj.Debug {
		obj.logf("compile: parsed %d top-level form(s)", len(nodes))
	}
	return nil
}

// parseExpr parses one parenthesised form, starting at its open paren. It
// returns the node the form builds: an expression normally, or a variable for
// a `set` form.
func (obj *Parser) parseExpr(sc *scanner) (interfaces.Node, error) {
	sc.next() // move past the '('
	sc.skipSpace()
	if sc.done() {
		return nil, errwrap.Wrapf(interfaces.ErrParseMissingFunc, "unexpected end of source")
	}
	if sc.peek() == '(' || sc.peek() == ')' {
		return nil, interfaces.ErrParseMissingFunc
	}

	head, err := sc.readToken()
	if err != nil {
		return nil, err
	}
	if head == "set" {
		// this isn't an expression after all, it's a variable setter
		return obj.parseSet(sc)
	}
	fn := obj.lookUpFunction(head)
	if fn == nil {
		return nil, errwrap.Wrapf(interfaces.ErrFuncNotFound, "head `%s`", head)
	}
	expr := ast.NewExpr()
	expr.SetFunction(fn)

	for {
		sc.skipSpace()
		if sc.done() {
			return nil, errwrap.Wrapf(interfaces.ErrParseMissingFunc, "missing ')' to close expression")
		}
		c := sc.peek()
		if c == ')' {
			sc.next() // move past the ')'
			break
		}
		if c == '(' {
			sub, err := obj.parseExpr(sc)
			if err != nil {
				return nil, err
			}
			expr.AddArg(sub)
			// add as sub-expr ONLY if it's an expression
			if e, ok := sub.(*ast.Expr); ok {
				obj.addSubExpr(e)
			}
			continue
		}
		token, err := sc.readToken()
		if err != nil {
			return nil, err
		}
		if err := obj.handleToken(expr, token); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// handleToken takes one parsed token from inside a form and places it into
// the expression as an argument: a literal becomes a pooled constant, and
// anything else becomes a variable, looked up or created as a placeholder.
func (obj *Parser) handleToken(expr *ast.Expr, token string) error {
	v, err := obj.parseConst(token)
	if err != nil {
		return err
	}
	if v != nil {
		obj.addConst(v)
		return expr.AddArg(v)
	}
	return expr.AddArg(obj.lookUpVariable(token))
}

// parseSet parses the remainder of a `(set name value)` form, with the
// cursor sitting just past the `set` token. The value may be a literal, the
// name of another variable, or a nested expression; the latter two are bound,
// so each read of the variable re-evaluates them. A bare `(set name)` gives
// no value: a new name becomes an undefined placeholder, and an existing
// variable keeps the value it has. The parsed variable is registered in the table,
// updating in place if the name already exists, and the node is returned so
// a `set` can stand as a form of its own.
func (obj *Parser) parseSet(sc *scanner) (interfaces.Node, error) {
	sc.skipSpace()
	if sc.done() {
		return nil, errwrap.Wrapf(interfaces.ErrParseSetArity, "missing variable name")
	}
	if sc.peek() == '(' {
		return nil, interfaces.ErrParseSetName
	}
	if sc.peek() == ')' {
		return nil, errwrap.Wrapf(interfaces.ErrParseSetArity, "missing variable name")
	}
	name, err := sc.readToken()
	if err != nil {
		return nil, err
	}
	v := obj.lookUpVariable(name)

	sc.skipSpace()
	if sc.done() {
		return nil, errwrap.Wrapf(interfaces.ErrParseSetArity, "missing ')' to close set")
	}
	switch sc.peek() {
	case ')':
		// a bare declaration: the variable stays as it is

	case '(':
		node, err := obj.parseExpr(sc)
		if err != nil {
			return nil, err
		}
		if e, ok := node.(*ast.Expr); ok {
			obj.addSubExpr(e)
		}
		if err := v.Bind(node); err != nil {
			return nil, err
		}

	default:
		token, err := sc.readToken()
		if err != nil {
			return nil, err
		}
		c, err := obj.parseConst(token)
		if err != nil {
			return nil, err
		}
		if c != nil {
			v.Assign(c)
		} else {
			// the value is another variable, track it
			if err := v.Bind(obj.lookUpVariable(token)); err != nil {
				return nil, err
			}
		}
	}

	sc.skipSpace()
	if sc.done() {
		return nil, errwrap.Wrapf(interfaces.ErrParseSetArity, "missing ')' to close set")
	}
	if sc.peek() != ')' {
		return nil, interfaces.ErrParseSetArity
	}
	sc.next() // move past the ')'
	return v, nil
}

// parseConst looks at a token and attempts to parse a constant out of it. The
// constants look like one of the following patterns:
//
//	+/- 1 2 3                     simple integers
//	...plus '.' and 'e'/'E'       floats
//	'YYYY-MM-DD[ HH:MM:SS.ssss]'  timestamps, single-quoted
//	true / false                  booleans
//
// A token that is none of these returns nil with no error: it's a variable
// reference, not a constant. A token that looks numeric but does not parse,
// or a malformed timestamp, is a syntax error.
func (obj *Parser) parseConst(token string) (*types.Value, error) {
	if len(token) >= 2 && token[0] == '\'' && token[len(token)-1] == '\'' {
		// likely a date by our format
		stamp, err := types.ParseTimestamp(token[1 : len(token)-1])
		if err != nil {
			return nil, errwrap.Wrapf(interfaces.ErrParseBadLiteral, "timestamp `%s`: %v", token, err)
		}
		return types.NewTime(stamp), nil
	}

	if token == "true" || token == "false" {
		return types.NewBool(token[0] == 't'), nil
	}

	if !isNumeric(token) {
		return nil, nil // not a constant
	}
	if strings.ContainsAny(token, ".eE") {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, errwrap.Wrapf(interfaces.ErrParseBadLiteral, "float `%s`", token)
		}
		return types.NewFloat(f), nil
	}
	i, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return nil, errwrap.Wrapf(interfaces.ErrParseBadLiteral, "int `%s`", token)
	}
	return types.NewInt(int32(i)), nil
}

// isNumeric says if a token is made of nothing but the numeric literal
// characters, with at least one actual digit in there. A token like `e` or
// `+` is a name, not a number.
func isNumeric(token string) bool {
	digits := false
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c >= '0' && c <= '9' {
			digits = true
			continue
		}
		switch c {
		case '+', '-', '.', 'e', 'E':
			continue
		}
		return false
	}
	return digits
}

// scanner is a tiny cursor over the source string. The only structural
// characters in the language are the parens and the single quote; everything
// else splits on whitespace.
type scanner struct {
	src string
	pos int
}

// done says if the cursor has run off the end of the source.
func (sc *scanner) done() bool {
	return sc.pos >= len(sc.src)
}

// peek returns the byte under the cursor.
func (sc *scanner) peek() byte {
	return sc.src[sc.pos]
}

// next returns the byte under the cursor and moves past it.
func (sc *scanner) next() byte {
	c := sc.src[sc.pos]
	sc.pos++
	return c
}

// skipSpace moves the cursor past any whitespace.
func (sc *scanner) skipSpace() {
	for !sc.done() && isSpace(sc.peek()) {
		sc.pos++
	}
}

// skipToParen moves the cursor to the next open paren, and says if it found
// one.
func (sc *scanner) skipToParen() bool {
	if sc.done() {
		return false
	}
	i := strings.IndexByte(sc.src[sc.pos:], '(')
	if i < 0 {
		sc.pos = len(sc.src)
		return false
	}
	sc.pos += i
	return true
}

// readToken reads one token: a run of characters up to the next whitespace or
// paren. A token that starts with a single quote runs to the closing quote,
// so quoted timestamps may contain spaces.
func (sc *scanner) readToken() (string, error) {
	start := sc.pos
	if !sc.done() && sc.peek() == '\'' {
		sc.pos++ // move past the opening quote
		for !sc.done() && sc.peek() != '\'' {
			sc.pos++
		}
		if sc.done() {
			return "", errwrap.Wrapf(interfaces.ErrParseBadLiteral, "unterminated quote `%s`", sc.src[start:])
		}
		sc.pos++ // move past the closing quote
		return sc.src[start:sc.pos], nil
	}
	for !sc.done() {
		c := sc.peek()
		if isSpace(c) || c == '(' || c == ')' {
			break
		}
		sc.pos++
	}
	return sc.src[start:sc.pos], nil
}

// isSpace says if this is one of the ASCII whitespace characters that
// separate tokens.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
