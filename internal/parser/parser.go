// Package parser implements the recursive-descent parser (spec §4.2),
// grounded on the teacher's codecrafters/cmd/parser.go for its
// token-cursor idioms (match/consume/check/advance) and on
// codecrafters/cmd/resolver.go for the scope-validation rules, which
// this parser enforces inline via a scope stack instead of a separate
// resolver pass.
package parser

import (
	"strconv"

	"github.com/samdecook/loxi/internal/ast"
	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/token"
)

type scopeKind int

const (
	scopeGlobal scopeKind = iota
	scopeClass
	scopeMethod
	scopeConstructor
	scopeFunction
	scopeLoop
	scopeVarDeclaration
)

type scopeFrame struct {
	kind scopeKind
	name string
}

// Parser turns a token stream into a Program, tracking a scope stack
// to enforce where statements and keywords like this/super/return may
// appear.
type Parser struct {
	tokens []token.Token
	pos    int
	scopes []scopeFrame
	isREPL bool
}

// Parse parses the full token stream into a Program. The first parse
// error terminates parsing (spec §7's propagation policy).
func Parse(tokens []token.Token, isREPL bool) (*ast.Program, error) {
	p := &Parser{
		tokens: tokens,
		scopes: []scopeFrame{{kind: scopeGlobal}},
		isREPL: isREPL,
	}
	var stmts []ast.Stmt
	for !p.atEnd() {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return &ast.Program{Stmts: stmts}, nil
}

// --------------- scope stack --------------- //

func (p *Parser) push(kind scopeKind, name string) { p.scopes = append(p.scopes, scopeFrame{kind, name}) }
func (p *Parser) pop()                             { p.scopes = p.scopes[:len(p.scopes)-1] }
func (p *Parser) top() scopeFrame                  { return p.scopes[len(p.scopes)-1] }

func (p *Parser) hasAnyKind(kinds ...scopeKind) bool {
	for _, f := range p.scopes {
		for _, k := range kinds {
			if f.kind == k {
				return true
			}
		}
	}
	return false
}

func (p *Parser) nearestClassName() (string, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if p.scopes[i].kind == scopeClass {
			return p.scopes[i].name, true
		}
	}
	return "", false
}

func (p *Parser) scopeErr(line int, format string, args ...any) *loxerr.ParserError {
	return loxerr.NewParserError(loxerr.ScopeError, line, format, args...)
}

// rejectIfGlobalOrClass enforces the rule shared by expression
// statements, print, if/else, while, for, and block: illegal directly
// at Global (unless REPL) and illegal directly inside a Class body.
func (p *Parser) rejectIfGlobalOrClass(form string) error {
	switch p.top().kind {
	case scopeClass:
		return p.scopeErr(p.peek().Line, "%s is not allowed inside a class body", form)
	case scopeGlobal:
		if !p.isREPL {
			return p.scopeErr(p.peek().Line, "%s is not allowed at the top level", form)
		}
	}
	return nil
}

// --------------- token cursor --------------- //

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

func (p *Parser) check(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(k token.Kind, what string) (token.Token, error) {
	if p.check(k) {
		return p.advance(), nil
	}
	cur := p.peek()
	if cur.Kind == token.EOF {
		return token.Token{}, loxerr.NewParserError(loxerr.EOFKind, cur.Line, "unexpected end of input, expected %s", what)
	}
	return token.Token{}, loxerr.NewParserError(loxerr.UnexpectedToken, cur.Line, "expected %s, got %q", what, cur.Lexeme)
}

// --------------- statements --------------- //

func (p *Parser) statement() (ast.Stmt, error) {
	switch p.peek().Kind {
	case token.Var, token.Const:
		return p.varDecl()
	case token.Fun:
		return p.funDeclStmt()
	case token.Class:
		return p.classDeclStmt()
	case token.If:
		return p.ifElseStmt()
	case token.While:
		return p.whileStmt()
	case token.For:
		return p.forStmt()
	case token.LeftBrace:
		return p.blockStmt()
	case token.Print, token.Println:
		return p.printStmt()
	case token.Return:
		return p.returnStmt()
	case token.Break:
		return p.breakStmt()
	case token.Continue:
		return p.continueStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) varDecl() (ast.Stmt, error) {
	kw := p.advance() // Var or Const
	isConst := kw.Kind == token.Const
	nameTok, err := p.consume(token.Identifier, "a variable name")
	if err != nil {
		return nil, err
	}
	var initExpr ast.Expr
	if p.match(token.Equal) {
		p.push(scopeVarDeclaration, nameTok.Lexeme)
		initExpr, err = p.expression()
		p.pop()
		if err != nil {
			return nil, err
		}
	} else if isConst {
		return nil, loxerr.NewParserError(loxerr.ConstValueNull, kw.Line,
			"const %q requires an initializer", nameTok.Lexeme)
	}
	if _, err := p.consume(token.Semicolon, "';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: nameTok.Lexeme, Init: initExpr, Const: isConst, Ln: kw.Line}, nil
}

func (p *Parser) funDeclStmt() (ast.Stmt, error) {
	kw := p.advance() // 'fun'
	decl, err := p.funDeclBody("")
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Decl: decl, Ln: kw.Line}, nil
}

// funDeclBody parses a function's name/params/body, assuming 'fun' was
// already consumed. className is "" for a free function; otherwise
// the enclosing class's name, used to tell constructor from method.
func (p *Parser) funDeclBody(className string) (*ast.FunctionDecl, error) {
	nameTok, err := p.consume(token.Identifier, "a function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftParen, "'(' after function name"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(token.RightParen) {
		for {
			pt, err := p.consume(token.Identifier, "a parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, pt.Lexeme)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftBrace, "'{' to start function body"); err != nil {
		return nil, err
	}

	kind := scopeFunction
	if className != "" {
		if nameTok.Lexeme == className {
			kind = scopeConstructor
		} else {
			kind = scopeMethod
		}
	}
	p.push(kind, nameTok.Lexeme)
	body, err := p.blockBody()
	p.pop()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{Name: nameTok.Lexeme, Params: params, Body: body, Line: nameTok.Line}, nil
}

func (p *Parser) classDeclStmt() (ast.Stmt, error) {
	kw := p.advance() // 'class'
	if p.top().kind != scopeGlobal {
		return nil, p.scopeErr(kw.Line, "class declarations are only allowed at the top level")
	}
	nameTok, err := p.consume(token.Identifier, "a class name")
	if err != nil {
		return nil, err
	}
	superclass := ""
	if p.match(token.Less) {
		superTok, err := p.consume(token.Identifier, "a superclass name")
		if err != nil {
			return nil, err
		}
		superclass = superTok.Lexeme
	}
	if _, err := p.consume(token.LeftBrace, "'{' to start class body"); err != nil {
		return nil, err
	}

	p.push(scopeClass, nameTok.Lexeme)
	defer p.pop()

	var statics []*ast.VarDecl
	methods := make(map[string]*ast.FunctionDecl)
	for !p.check(token.RightBrace) && !p.atEnd() {
		switch p.peek().Kind {
		case token.Var, token.Const:
			vd, err := p.varDecl()
			if err != nil {
				return nil, err
			}
			statics = append(statics, vd.(*ast.VarDecl))
		case token.Fun:
			p.advance()
			fd, err := p.funDeclBody(nameTok.Lexeme)
			if err != nil {
				return nil, err
			}
			methods[fd.Name] = fd
		default:
			return nil, p.scopeErr(p.peek().Line, "unexpected %q inside class body", p.peek().Lexeme)
		}
	}
	if _, err := p.consume(token.RightBrace, "'}' to close class body"); err != nil {
		return nil, err
	}
	return &ast.ClassStmt{Decl: &ast.ClassDecl{
		Name:         nameTok.Lexeme,
		StaticFields: statics,
		Methods:      methods,
		Superclass:   superclass,
		Line:         kw.Line,
	}, Ln: kw.Line}, nil
}

func (p *Parser) blockBody() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.consume(token.RightBrace, "'}' to close block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) blockStmt() (ast.Stmt, error) {
	if err := p.rejectIfGlobalOrClass("a block"); err != nil {
		return nil, err
	}
	kw, err := p.consume(token.LeftBrace, "'{' to start block")
	if err != nil {
		return nil, err
	}
	stmts, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return &ast.BlockStmt{Stmts: stmts, Ln: kw.Line}, nil
}

func (p *Parser) exprStmt() (ast.Stmt, error) {
	if err := p.rejectIfGlobalOrClass("an expression statement"); err != nil {
		return nil, err
	}
	line := p.peek().Line
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: e, Ln: line}, nil
}

func (p *Parser) printStmt() (ast.Stmt, error) {
	if err := p.rejectIfGlobalOrClass("a print statement"); err != nil {
		return nil, err
	}
	kw := p.advance() // Print or Println
	newline := kw.Kind == token.Println
	var exprs []ast.Expr
	first, err := p.expression()
	if err != nil {
		return nil, err
	}
	exprs = append(exprs, first)
	for p.match(token.Comma) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	if _, err := p.consume(token.Semicolon, "';' after print arguments"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Exprs: exprs, Newline: newline, Ln: kw.Line}, nil
}

func (p *Parser) ifElseStmt() (ast.Stmt, error) {
	if err := p.rejectIfGlobalOrClass("an if statement"); err != nil {
		return nil, err
	}
	kw := p.advance() // 'if'
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}
	branches := []ast.Branch{{Condition: cond, Body: body, Line: kw.Line}}

	for p.check(token.Else) {
		elseKw := p.advance()
		if p.match(token.If) {
			c, err := p.expression()
			if err != nil {
				return nil, err
			}
			b, err := p.blockStmt()
			if err != nil {
				return nil, err
			}
			branches = append(branches, ast.Branch{Condition: c, Body: b, Line: elseKw.Line})
			continue
		}
		b, err := p.blockStmt()
		if err != nil {
			return nil, err
		}
		branches = append(branches, ast.Branch{
			Condition: &ast.BoolLiteral{Value: true, Ln: elseKw.Line},
			Body:      b,
			Line:      elseKw.Line,
		})
		break
	}
	return &ast.IfElseStmt{Branches: branches, Ln: kw.Line}, nil
}

func (p *Parser) whileStmt() (ast.Stmt, error) {
	if err := p.rejectIfGlobalOrClass("a while loop"); err != nil {
		return nil, err
	}
	kw := p.advance() // 'while'
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.push(scopeLoop, "")
	body, err := p.blockStmt()
	p.pop()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body, Ln: kw.Line}, nil
}

func (p *Parser) forStmt() (ast.Stmt, error) {
	if err := p.rejectIfGlobalOrClass("a for loop"); err != nil {
		return nil, err
	}
	kw := p.advance() // 'for'
	if p.check(token.Semicolon) {
		return nil, loxerr.NewParserError(loxerr.ForLoopDeclaration, kw.Line,
			"a for loop requires an initializer statement")
	}
	init, err := p.statement()
	if err != nil {
		return nil, err
	}
	if p.check(token.Semicolon) {
		return nil, loxerr.NewParserError(loxerr.ForLoopDeclaration, kw.Line,
			"a for loop requires a condition expression")
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "';' after for loop condition"); err != nil {
		return nil, err
	}
	step, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.push(scopeLoop, "")
	body, err := p.blockStmt()
	p.pop()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Init: init, Cond: cond, Step: step, Body: body, Ln: kw.Line}, nil
}

func (p *Parser) returnStmt() (ast.Stmt, error) {
	kw := p.advance() // 'return'
	if !p.hasAnyKind(scopeFunction, scopeMethod) {
		return nil, p.scopeErr(kw.Line, "return is only allowed inside a function or method")
	}
	var expr ast.Expr
	if !p.check(token.Semicolon) {
		var err error
		expr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "';' after return value"); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Expr: expr, Ln: kw.Line}, nil
}

func (p *Parser) breakStmt() (ast.Stmt, error) {
	kw := p.advance() // 'break'
	if p.top().kind != scopeLoop {
		return nil, p.scopeErr(kw.Line, "break is only allowed inside a loop")
	}
	if _, err := p.consume(token.Semicolon, "';' after break"); err != nil {
		return nil, err
	}
	return &ast.BreakStmt{Ln: kw.Line}, nil
}

func (p *Parser) continueStmt() (ast.Stmt, error) {
	kw := p.advance() // 'continue'
	if p.top().kind != scopeLoop {
		return nil, p.scopeErr(kw.Line, "continue is only allowed inside a loop")
	}
	if _, err := p.consume(token.Semicolon, "';' after continue"); err != nil {
		return nil, err
	}
	return &ast.ContinueStmt{Ln: kw.Line}, nil
}

// --------------- expressions --------------- //

func (p *Parser) expression() (ast.Expr, error) { return p.assignment() }

var compoundOps = map[token.Kind]string{
	token.PlusEqual:    "+",
	token.MinusEqual:   "-",
	token.StarEqual:    "*",
	token.SlashEqual:   "/",
	token.PercentEqual: "%",
}

func (p *Parser) assignment() (ast.Expr, error) {
	left, err := p.objectLiteralOrLower()
	if err != nil {
		return nil, err
	}
	if p.check(token.Equal) {
		eq := p.advance()
		right, err := p.assignment()
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Target: left, Value: right, Ln: eq.Line}, nil
	}
	if base, ok := compoundOps[p.peek().Kind]; ok {
		opTok := p.advance()
		right, err := p.assignment()
		if err != nil {
			return nil, err
		}
		desugared := &ast.BinaryExpr{Left: left, Op: base, Right: right, Ln: opTok.Line}
		return &ast.AssignExpr{Target: left, Value: desugared, Ln: opTok.Line}, nil
	}
	return left, nil
}

func (p *Parser) objectLiteralOrLower() (ast.Expr, error) {
	if p.check(token.LeftBrace) {
		return p.objectLiteral()
	}
	return p.logicalOr()
}

func (p *Parser) objectLiteral() (ast.Expr, error) {
	kw := p.advance() // '{'
	var props []ast.Property
	for !p.check(token.RightBrace) && !p.atEnd() {
		var key string
		var keyLine int
		switch p.peek().Kind {
		case token.Identifier, token.String:
			t := p.advance()
			key, keyLine = t.Lexeme, t.Line
		default:
			return nil, loxerr.NewParserError(loxerr.ObjectKey, p.peek().Line,
				"expected identifier or string as object key, got %q", p.peek().Lexeme)
		}
		var val ast.Expr
		if p.match(token.Colon) {
			v, err := p.expression()
			if err != nil {
				return nil, err
			}
			val = v
		}
		props = append(props, ast.Property{Key: key, Value: val, Line: keyLine})
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.consume(token.RightBrace, "'}' to close object literal"); err != nil {
		return nil, err
	}
	return &ast.ObjectExpr{Properties: props, Ln: kw.Line}, nil
}

func (p *Parser) logicalOr() (ast.Expr, error) {
	left, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.Or) {
		opTok := p.advance()
		right, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Left: left, Op: "or", Right: right, Ln: opTok.Line}
	}
	return left, nil
}

func (p *Parser) logicalAnd() (ast.Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.check(token.And) {
		opTok := p.advance()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Left: left, Op: "and", Right: right, Ln: opTok.Line}
	}
	return left, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.check(token.EqualEqual) || p.check(token.BangEqual) {
		opTok := p.advance()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: opText(opTok.Kind), Right: right, Ln: opTok.Line}
	}
	return left, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	for p.check(token.Greater) || p.check(token.GreaterEqual) || p.check(token.Less) || p.check(token.LessEqual) {
		opTok := p.advance()
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		left = &ast.ComparisonExpr{Left: left, Op: opText(opTok.Kind), Right: right, Ln: opTok.Line}
	}
	return left, nil
}

func (p *Parser) additive() (ast.Expr, error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(token.Plus) || p.check(token.Minus) {
		opTok := p.advance()
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: opText(opTok.Kind), Right: right, Ln: opTok.Line}
	}
	return left, nil
}

func (p *Parser) multiplicative() (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.check(token.Star) || p.check(token.Slash) || p.check(token.Percent) {
		opTok := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: opText(opTok.Kind), Right: right, Ln: opTok.Line}
	}
	return left, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.check(token.Bang) || p.check(token.Minus) {
		opTok := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: opText(opTok.Kind), Right: right, Ln: opTok.Line}, nil
	}
	return p.callMember()
}

func (p *Parser) callMember() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case token.Dot:
			dotTok := p.advance()
			var propExpr ast.Expr
			switch p.peek().Kind {
			case token.Identifier:
				t := p.advance()
				propExpr = &ast.Identifier{Name: t.Lexeme, Ln: t.Line}
			case token.This:
				t := p.advance()
				propExpr = &ast.ThisExpr{Ln: t.Line}
			case token.Super:
				t := p.advance()
				cls, _ := p.nearestClassName()
				propExpr = &ast.SuperExpr{EnclosingClass: cls, Ln: t.Line}
			default:
				return nil, loxerr.NewParserError(loxerr.MemberExpr, dotTok.Line,
					"expected identifier, this, or super after '.'")
			}
			expr = &ast.MemberExpr{Object: expr, Property: propExpr, Computed: false, Ln: dotTok.Line}
		case token.LeftBracket:
			br := p.advance()
			idx, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.RightBracket, "']' after index expression"); err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{Object: expr, Property: idx, Computed: true, Ln: br.Line}
		case token.LeftParen:
			paren := p.advance()
			var args []ast.Expr
			if !p.check(token.RightParen) {
				for {
					a, err := p.expression()
					if err != nil {
						return nil, err
					}
					args = append(args, a)
					if !p.match(token.Comma) {
						break
					}
				}
			}
			if _, err := p.consume(token.RightParen, "')' after call arguments"); err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Callee: expr, Args: args, Ln: paren.Line}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) primary() (ast.Expr, error) {
	t := p.peek()
	switch t.Kind {
	case token.Number:
		p.advance()
		n, _ := strconv.ParseFloat(t.Lexeme, 64)
		return &ast.NumericLiteral{Value: n, Ln: t.Line}, nil
	case token.String:
		p.advance()
		return &ast.StringLiteral{Value: t.Lexeme, Ln: t.Line}, nil
	case token.True:
		p.advance()
		return &ast.BoolLiteral{Value: true, Ln: t.Line}, nil
	case token.False:
		p.advance()
		return &ast.BoolLiteral{Value: false, Ln: t.Line}, nil
	case token.Nil:
		p.advance()
		return &ast.NullLiteral{Ln: t.Line}, nil
	case token.Identifier:
		p.advance()
		return &ast.Identifier{Name: t.Lexeme, Ln: t.Line}, nil
	case token.This:
		if !p.hasAnyKind(scopeClass, scopeMethod, scopeConstructor) {
			return nil, p.scopeErr(t.Line, "'this' is only allowed inside a method or constructor")
		}
		p.advance()
		return &ast.ThisExpr{Ln: t.Line}, nil
	case token.Super:
		if !p.hasAnyKind(scopeClass, scopeMethod, scopeConstructor) {
			return nil, p.scopeErr(t.Line, "'super' is only allowed inside a method or constructor")
		}
		p.advance()
		cls, _ := p.nearestClassName()
		return &ast.SuperExpr{EnclosingClass: cls, Ln: t.Line}, nil
	case token.LeftParen:
		p.advance()
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "')' to close grouping"); err != nil {
			return nil, err
		}
		return e, nil
	case token.LeftBracket:
		return p.arrayLiteral()
	default:
		return nil, loxerr.NewParserError(loxerr.PrimaryExpr, t.Line, "unexpected token %q in expression", t.Lexeme)
	}
}

func (p *Parser) arrayLiteral() (ast.Expr, error) {
	kw := p.advance() // '['
	var elems []ast.Expr
	if !p.check(token.RightBracket) {
		for {
			e, err := p.expression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightBracket, "']' to close array literal"); err != nil {
		return nil, err
	}
	return &ast.ArrayExpr{Elements: elems, Ln: kw.Line}, nil
}

func opText(k token.Kind) string {
	switch k {
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Star:
		return "*"
	case token.Slash:
		return "/"
	case token.Percent:
		return "%"
	case token.EqualEqual:
		return "=="
	case token.BangEqual:
		return "!="
	case token.Greater:
		return ">"
	case token.GreaterEqual:
		return ">="
	case token.Less:
		return "<"
	case token.LessEqual:
		return "<="
	case token.Bang:
		return "!"
	default:
		return k.String()
	}
}
