package parser

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// Literal parsing: numbers, typed literals and escape literals.
//
//	literal      → STRING | INTEGER | DECIMAL | FLOAT | TRUE | FALSE | UNKNOWN | NULL
//	typed        → (DATE | TIME | TIMESTAMP) STRING
//	escape       → "{" (d | t | ts | b) STRING "}"

// parseNumber converts a numeric token into a constant. Integers take the
// narrowest of integer, long and biginteger that holds them.
func (p *Parser) parseNumber(tok token.Token) *core.Constant {
	switch tok.Type {
	case token.INTEGER:
		return integerConstant(tok.Literal)
	case token.DECIMAL:
		if p.info.DecimalAsDouble {
			f, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				p.abort(syntaxError(tok, err.Error()))
			}
			return core.NewConstant(f)
		}
		d, err := decimal.NewFromString(tok.Literal)
		if err != nil {
			p.abort(syntaxError(tok, err.Error()))
		}
		return core.NewConstant(d)
	default:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.abort(syntaxError(tok, err.Error()))
		}
		return core.NewConstant(f)
	}
}

func integerConstant(lit string) *core.Constant {
	if v, err := strconv.ParseInt(lit, 10, 32); err == nil {
		return core.NewConstant(int32(v))
	}
	if v, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return core.NewConstant(v)
	}
	b, _ := new(big.Int).SetString(lit, 10)
	return core.NewConstant(b)
}

// negateConstant folds a unary minus into a numeric constant, narrowing
// the result where it now fits a smaller integer type.
func negateConstant(c *core.Constant) (*core.Constant, bool) {
	switch v := c.Value.(type) {
	case int32:
		if v == math.MinInt32 {
			return core.NewConstant(-int64(v)), true
		}
		return core.NewConstant(-v), true
	case int64:
		if v == -math.MinInt32 {
			return core.NewConstant(int32(math.MinInt32)), true
		}
		return core.NewConstant(-v), true
	case *big.Int:
		n := new(big.Int).Neg(v)
		if n.IsInt64() {
			return core.NewConstant(n.Int64()), true
		}
		return core.NewConstant(n), true
	case float64:
		return core.NewConstant(-v), true
	case decimal.Decimal:
		return core.NewConstant(v.Neg()), true
	}
	return nil, false
}

// parseIntLiteral parses an unsigned integer that must fit an int.
func (p *Parser) parseIntLiteral() int {
	tok := p.expect(token.INTEGER)
	v, err := strconv.Atoi(tok.Literal)
	if err != nil {
		p.abort(syntaxError(tok, err.Error()))
	}
	return v
}

// parseStringLiteral parses a single string literal.
func (p *Parser) parseStringLiteral() string {
	return p.expect(token.STRING).Literal
}

// ---------- Temporal Literals ----------

const (
	dateLayout      = "2006-1-2"
	timeLayout      = "15:04:05"
	timestampLayout = "2006-1-2 15:04:05"
)

// parseDate parses yyyy-mm-dd into a UTC midnight value.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

// parseTime parses hh:mm:ss into a value on 1970-01-01 UTC.
func parseTime(s string) (time.Time, bool) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(s))
	if err != nil || t.Nanosecond() != 0 {
		return time.Time{}, false
	}
	return time.Date(1970, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
}

// parseTimestamp parses yyyy-mm-dd hh:mm:ss[.f...] with up to nanosecond
// precision.
func parseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(timestampLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), true
}

// temporalConstant builds a date, time or timestamp constant from its
// literal body.
func (p *Parser) temporalConstant(tok token.Token, kind core.DataType, body string) *core.Constant {
	var (
		t  time.Time
		ok bool
	)
	switch kind {
	case core.TypeDate:
		t, ok = parseDate(body)
	case core.TypeTime:
		t, ok = parseTime(body)
	default:
		t, ok = parseTimestamp(body)
	}
	if !ok {
		p.failAt(tok, errTypedLiteral, kind, body)
	}
	return &core.Constant{Type: kind, Value: t}
}

// parseEscapeLiteral parses {d'..'}, {t'..'}, {ts'..'} and {b'..'} after
// the opening brace has been seen.
func (p *Parser) parseEscapeLiteral() *core.Constant {
	p.expect(token.LBRACE)
	kindTok := p.expect(token.IDENT)
	bodyTok := p.expect(token.STRING)
	p.expect(token.RBRACE)

	body := bodyTok.Literal
	switch strings.ToLower(kindTok.Literal) {
	case "d":
		return p.temporalConstant(bodyTok, core.TypeDate, body)
	case "t":
		return p.temporalConstant(bodyTok, core.TypeTime, body)
	case "ts":
		return p.temporalConstant(bodyTok, core.TypeTimestamp, body)
	case "b":
		switch strings.ToLower(strings.TrimSpace(body)) {
		case "true":
			return core.NewConstant(true)
		case "false":
			return core.NewConstant(false)
		case "unknown":
			return core.NullConstant(core.TypeBoolean)
		}
	}
	p.failAt(bodyTok, errEscapeLiteral, kindTok.Literal, body)
	return nil
}

// isEscapeLiteral reports whether the current token opens an escape literal.
func (p *Parser) isEscapeLiteral() bool {
	if !p.check(token.LBRACE) || p.peekAt(2).Type != token.STRING {
		return false
	}
	k := p.peekAt(1)
	return k.Is("d") || k.Is("t") || k.Is("ts") || k.Is("b")
}
