package parser

import (
	"io"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/metadata"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// QueryParser is the entry point for parsing. It holds only options and
// is safe for concurrent use; every call parses with fresh state.
type QueryParser struct {
	Info ParseInfo
}

// NewQueryParser returns a QueryParser using the given options.
func NewQueryParser(info ParseInfo) *QueryParser {
	return &QueryParser{Info: info}
}

var defaultParser = NewQueryParser(DefaultParseInfo())

// ParseCommand parses a single command with the default options.
func ParseCommand(sql string) (core.Command, error) {
	return defaultParser.ParseCommand(sql)
}

// ParseExpression parses a single expression with the default options.
func ParseExpression(sql string) (core.Expression, error) {
	return defaultParser.ParseExpression(sql)
}

// ParseCriteria parses a single criteria with the default options.
func ParseCriteria(sql string) (core.Criteria, error) {
	return defaultParser.ParseCriteria(sql)
}

// ParseUpdateProcedure parses a procedure body with the default options.
func ParseUpdateProcedure(sql string) (*core.CreateUpdateProcedureCommand, error) {
	return defaultParser.ParseUpdateProcedure(sql)
}

// ParseDDLStatements parses DDL text into statements with the default
// options.
func ParseDDLStatements(ddl string) ([]core.DDLStatement, error) {
	return defaultParser.ParseDDLStatements(ddl)
}

// ParseDDL parses DDL text and builds the metadata of schema with the
// default options.
func ParseDDL(ddl, schema string, datatypes *metadata.Datatypes, opts ...metadata.BuildOption) (*metadata.Factory, error) {
	return defaultParser.ParseDDL(ddl, schema, datatypes, opts...)
}

// emptyError is returned for empty input, whether it came as an empty
// string or a nil reader.
func emptyError() *ParseError {
	return &ParseError{
		Pos:     token.Position{Line: 1, Column: 1},
		Token:   "<EOF>",
		Message: "Query string was null or empty.",
		Err:     ErrEmptySQL,
	}
}

// parse runs rule over sql and returns its error, if any.
func (qp *QueryParser) parse(sql string, rule func(p *Parser)) error {
	if sql == "" {
		return emptyError()
	}
	p := NewParser(sql, qp.Info)
	return p.run(func() { rule(p) })
}

// ParseCommand parses a command. A single trailing semicolon is allowed.
func (qp *QueryParser) ParseCommand(sql string) (core.Command, error) {
	var cmd core.Command
	err := qp.parse(sql, func(p *Parser) {
		cmd = p.parseCommand()
		p.match(token.SEMICOLON)
		p.expectEOF()
	})
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// ParseCommandReader reads all of r and parses it as a command. A nil
// reader is treated like empty input.
func (qp *QueryParser) ParseCommandReader(r io.Reader) (core.Command, error) {
	if r == nil {
		return nil, emptyError()
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return qp.ParseCommand(string(b))
}

// ParseExpression parses an expression. A predicate is returned as its
// criteria node.
func (qp *QueryParser) ParseExpression(sql string) (core.Expression, error) {
	var expr core.Expression
	err := qp.parse(sql, func(p *Parser) {
		expr = p.parseExpression()
		p.expectEOF()
	})
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseCriteria parses a condition.
func (qp *QueryParser) ParseCriteria(sql string) (core.Criteria, error) {
	var crit core.Criteria
	err := qp.parse(sql, func(p *Parser) {
		crit = p.parseCondition()
		p.expectEOF()
	})
	if err != nil {
		return nil, err
	}
	return crit, nil
}

// ParseUpdateProcedure parses CREATE [VIRTUAL] PROCEDURE block, or a bare
// block.
func (qp *QueryParser) ParseUpdateProcedure(sql string) (*core.CreateUpdateProcedureCommand, error) {
	var cmd *core.CreateUpdateProcedureCommand
	err := qp.parse(sql, func(p *Parser) {
		if p.match(token.CREATE) {
			p.match(token.VIRTUAL)
			p.expect(token.PROCEDURE)
		}
		cmd = &core.CreateUpdateProcedureCommand{Block: p.parseBlock(), Virtual: true}
		p.match(token.SEMICOLON)
		p.expectEOF()
	})
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// ParseDDLStatements parses ;-separated DDL statements.
func (qp *QueryParser) ParseDDLStatements(ddl string) ([]core.DDLStatement, error) {
	var stmts []core.DDLStatement
	err := qp.parse(ddl, func(p *Parser) {
		stmts = p.parseDDLStatements()
	})
	if err != nil {
		return nil, err
	}
	return stmts, nil
}

// ParseDDL parses DDL text and builds the metadata of one schema from it.
// Syntax errors are returned as *ParseError; metadata violations as
// *metadata.MetadataError or *metadata.DuplicateRecordError.
func (qp *QueryParser) ParseDDL(ddl, schema string, datatypes *metadata.Datatypes, opts ...metadata.BuildOption) (*metadata.Factory, error) {
	stmts, err := qp.ParseDDLStatements(ddl)
	if err != nil {
		return nil, err
	}
	return metadata.Build(stmts, schema, datatypes, opts...)
}
