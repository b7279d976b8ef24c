package parser

import (
	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// SQL/XML functions.
//
// Grammar:
//
//	xmlelement   → XMLELEMENT "(" [NAME] id ["," xmlnamespaces] ["," xmlattributes] ("," expr)* ")"
//	xmlnamespaces→ XMLNAMESPACES "(" ns_item ("," ns_item)* ")"
//	ns_item      → STRING AS id | DEFAULT STRING | NO DEFAULT
//	xmlforest    → XMLFOREST "(" [xmlnamespaces ","] derived ("," derived)* ")"
//	xmlquery     → XMLQUERY "(" [xmlnamespaces ","] STRING [PASSING derived, ...]
//	               [(NULL|EMPTY) ON EMPTY] ")"
//	xmlparse     → XMLPARSE "(" (DOCUMENT|CONTENT) expr [WELLFORMED] ")"
//	xmlserialize → XMLSERIALIZE "(" [DOCUMENT|CONTENT] expr [AS type] [ENCODING id]
//	               [VERSION STRING] [(INCLUDING|EXCLUDING) XMLDECLARATION] ")"
//	xmlpi        → XMLPI "(" [NAME] id ["," expr] ")"

func (p *Parser) parseXMLElement() core.Expression {
	p.expect(token.XMLELEMENT)
	p.expect(token.LPAREN)
	e := &core.XMLElement{Name: p.parseXMLName()}
	for p.match(token.COMMA) {
		switch {
		case p.check(token.XMLNAMESPACES) && e.Namespaces == nil && e.Attributes == nil && e.Content == nil:
			e.Namespaces = p.parseXMLNamespaces()
		case p.check(token.XMLATTRIBUTES) && e.Attributes == nil && e.Content == nil:
			p.next()
			p.expect(token.LPAREN)
			e.Attributes = &core.XMLAttributes{Args: p.parseDerivedColumns()}
			p.expect(token.RPAREN)
		default:
			e.Content = append(e.Content, p.parseExpression())
		}
	}
	p.expect(token.RPAREN)
	return e
}

// parseXMLName parses [NAME] id.
func (p *Parser) parseXMLName() string {
	if p.checkWord("name") && p.checkPeek(token.IDENT) {
		p.next()
	}
	return p.parseIdentifier()
}

// parseXMLNamespaces parses XMLNAMESPACES(...).
func (p *Parser) parseXMLNamespaces() *core.XMLNamespaces {
	p.expect(token.XMLNAMESPACES)
	p.expect(token.LPAREN)
	ns := &core.XMLNamespaces{}
	for {
		item := &core.NamespaceItem{}
		switch {
		case p.match(token.DEFAULT):
			item.URI = p.parseStringLiteral()
		case p.matchWord("no"):
			p.expect(token.DEFAULT)
		default:
			item.URI = p.parseStringLiteral()
			p.expect(token.AS)
			item.Prefix = p.parseIdentifier()
		}
		ns.Items = append(ns.Items, item)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return ns
}

func (p *Parser) parseXMLForest() core.Expression {
	p.expect(token.XMLFOREST)
	p.expect(token.LPAREN)
	f := &core.XMLForest{}
	if p.check(token.XMLNAMESPACES) {
		f.Namespaces = p.parseXMLNamespaces()
		p.expect(token.COMMA)
	}
	f.Args = p.parseDerivedColumns()
	p.expect(token.RPAREN)
	return f
}

func (p *Parser) parseXMLQuery() core.Expression {
	p.expect(token.XMLQUERY)
	p.expect(token.LPAREN)
	q := &core.XMLQuery{}
	if p.check(token.XMLNAMESPACES) {
		q.Namespaces = p.parseXMLNamespaces()
		p.expect(token.COMMA)
	}
	q.XQuery = p.parseStringLiteral()
	if p.matchWord("passing") {
		q.Passing = p.parseDerivedColumns()
	}
	if p.check(token.NULL) || p.checkWord("empty") {
		empty := !p.match(token.NULL)
		if empty {
			p.next()
		}
		p.expect(token.ON)
		p.expectWord("empty")
		q.EmptyOnEmpty = &empty
	}
	p.expect(token.RPAREN)
	return q
}

func (p *Parser) parseXMLParse() core.Expression {
	p.expect(token.XMLPARSE)
	p.expect(token.LPAREN)
	x := &core.XMLParse{}
	switch {
	case p.matchWord("document"):
		x.Document = true
	case p.matchWord("content"):
	default:
		p.failf(errExpecting, `"DOCUMENT" | "CONTENT"`)
	}
	x.Expression = p.parseExpression()
	x.WellFormed = p.matchWord("wellformed")
	p.expect(token.RPAREN)
	return x
}

func (p *Parser) parseXMLSerialize() core.Expression {
	p.expect(token.XMLSERIALIZE)
	p.expect(token.LPAREN)
	x := &core.XMLSerialize{}
	if p.isDocumentKeyword() {
		doc := p.next().Is("document")
		x.Document = &doc
	}
	x.Expression = p.parseExpression()
	if p.match(token.AS) {
		x.TypeName = p.parseTypeName()
	}
	if p.matchWord("encoding") {
		x.Encoding = p.parseIdentifier()
	}
	if p.matchWord("version") {
		x.Version = p.parseStringLiteral()
	}
	if p.checkWord("including") || p.checkWord("excluding") {
		decl := p.next().Is("including")
		p.expectWord("xmldeclaration")
		x.Declaration = &decl
	}
	p.expect(token.RPAREN)
	return x
}

// isDocumentKeyword reports whether DOCUMENT or CONTENT at the current
// position is the serialization kind rather than a column name.
func (p *Parser) isDocumentKeyword() bool {
	if !p.checkWord("document") && !p.checkWord("content") {
		return false
	}
	next := p.peekAt(1).Type
	switch next {
	case token.AS, token.RPAREN, token.DOT, token.COMMA:
		return false
	}
	return infixPrecedence(next) == precNone
}

// parseXMLPI parses XMLPI([NAME] id [, expr]) into the XMLPI function whose
// first argument is the target name.
func (p *Parser) parseXMLPI() core.Expression {
	p.expect(token.XMLPI)
	p.expect(token.LPAREN)
	fn := &core.Function{Name: "XMLPI", Args: []core.Expression{core.NewConstant(p.parseXMLName())}}
	if p.match(token.COMMA) {
		fn.Args = append(fn.Args, p.parseExpression())
	}
	p.expect(token.RPAREN)
	return fn
}
