package format

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teiid/teiid-sub017/pkg/core"
)

// VisitConstant renders a literal.
func (p *Printer) VisitConstant(n *core.Constant) {
	p.write(constantText(n))
}

// VisitReference renders a bind parameter.
func (p *Printer) VisitReference(*core.Reference) {
	p.write("?")
}

func constantText(c *core.Constant) string {
	if c.IsNull() {
		switch c.Type {
		case core.TypeNull:
			return "NULL"
		case core.TypeBoolean:
			return "UNKNOWN"
		}
		return "CAST(NULL AS " + c.Type.String() + ")"
	}

	switch v := c.Value.(type) {
	case string:
		return quoteString(v)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case *big.Int:
		return v.String()
	case float64:
		return doubleText(v)
	case float32:
		return doubleText(float64(v))
	case decimal.Decimal:
		return decimalText(v)
	case time.Time:
		return temporalText(c.Type, v)
	case []byte:
		return "X'" + strings.ToUpper(hex.EncodeToString(v)) + "'"
	}
	return quoteString(fmt.Sprint(c.Value))
}

// doubleText renders f in exponent form with at least one fraction digit:
// 1.3E8, 1.0E2, 2.5E-3.
func doubleText(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(e)
}

// decimalText keeps the scale of d, so 1.0 stays 1.0.
func decimalText(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

// temporalText renders the escape form of a date, time or timestamp.
// Timestamps always carry a fraction; trailing zeros are trimmed.
func temporalText(t core.DataType, v time.Time) string {
	date := fmt.Sprintf("%04d-%02d-%02d", v.Year(), int(v.Month()), v.Day())
	clock := fmt.Sprintf("%02d:%02d:%02d", v.Hour(), v.Minute(), v.Second())
	switch t {
	case core.TypeDate:
		return "{d'" + date + "'}"
	case core.TypeTime:
		return "{t'" + clock + "'}"
	}
	fraction := "0"
	if ns := v.Nanosecond(); ns != 0 {
		fraction = strings.TrimRight(fmt.Sprintf("%09d", ns), "0")
	}
	return "{ts'" + date + " " + clock + "." + fraction + "'}"
}
