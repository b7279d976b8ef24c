package core

import (
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DataType enumerates the runtime types a literal or declared value can carry.
type DataType int

// Runtime data types.
const (
	TypeNull DataType = iota
	TypeString
	TypeChar
	TypeBoolean
	TypeByte
	TypeShort
	TypeInteger
	TypeLong
	TypeBigInteger
	TypeFloat
	TypeDouble
	TypeBigDecimal
	TypeDate
	TypeTime
	TypeTimestamp
	TypeObject
	TypeBlob
	TypeClob
	TypeXML
	TypeVarbinary
	TypeGeometry
	TypeJSON
)

var dataTypeNames = [...]string{
	TypeNull:       "null",
	TypeString:     "string",
	TypeChar:       "char",
	TypeBoolean:    "boolean",
	TypeByte:       "byte",
	TypeShort:      "short",
	TypeInteger:    "integer",
	TypeLong:       "long",
	TypeBigInteger: "biginteger",
	TypeFloat:      "float",
	TypeDouble:     "double",
	TypeBigDecimal: "bigdecimal",
	TypeDate:       "date",
	TypeTime:       "time",
	TypeTimestamp:  "timestamp",
	TypeObject:     "object",
	TypeBlob:       "blob",
	TypeClob:       "clob",
	TypeXML:        "xml",
	TypeVarbinary:  "varbinary",
	TypeGeometry:   "geometry",
	TypeJSON:       "json",
}

// typeAliases maps SQL type names onto runtime type names.
var typeAliases = map[string]string{
	"varchar":  "string",
	"tinyint":  "byte",
	"smallint": "short",
	"bigint":   "long",
	"real":     "float",
	"decimal":  "bigdecimal",
}

var dataTypesByName = func() map[string]DataType {
	m := make(map[string]DataType, len(dataTypeNames))
	for i, n := range dataTypeNames {
		m[n] = DataType(i)
	}
	return m
}()

// String returns the runtime type name.
func (t DataType) String() string {
	if int(t) < len(dataTypeNames) {
		return dataTypeNames[t]
	}
	return "unknown"
}

// LookupDataType resolves a type name or alias, case-insensitively.
func LookupDataType(name string) (DataType, bool) {
	n := strings.ToLower(name)
	if alias, ok := typeAliases[n]; ok {
		n = alias
	}
	t, ok := dataTypesByName[n]
	return t, ok
}

// CanonicalTypeName returns the runtime name for name, resolving aliases.
// Unknown names are returned lower-cased.
func CanonicalTypeName(name string) string {
	if t, ok := LookupDataType(name); ok {
		return t.String()
	}
	return strings.ToLower(name)
}

// NumericRank orders the numeric types by widening conversion. Non-numeric
// types rank 0.
func (t DataType) NumericRank() int {
	switch t {
	case TypeByte:
		return 1
	case TypeShort:
		return 2
	case TypeInteger:
		return 3
	case TypeLong:
		return 4
	case TypeBigInteger:
		return 5
	case TypeFloat:
		return 6
	case TypeDouble:
		return 7
	case TypeBigDecimal:
		return 8
	default:
		return 0
	}
}

// IsNumeric reports whether t is one of the numeric types.
func (t DataType) IsNumeric() bool {
	return t.NumericRank() > 0
}

// Promote returns the wider of two numeric types. If either is not numeric
// the other is returned unchanged.
func Promote(a, b DataType) DataType {
	if !a.IsNumeric() {
		return b
	}
	if !b.IsNumeric() {
		return a
	}
	if a.NumericRank() >= b.NumericRank() {
		return a
	}
	return b
}

// TypeOfValue reports the runtime type of a literal Go value.
func TypeOfValue(v any) DataType {
	switch v.(type) {
	case nil:
		return TypeNull
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case int8:
		return TypeByte
	case int16:
		return TypeShort
	case int32:
		return TypeInteger
	case int64:
		return TypeLong
	case *big.Int:
		return TypeBigInteger
	case float32:
		return TypeFloat
	case float64:
		return TypeDouble
	case decimal.Decimal:
		return TypeBigDecimal
	case time.Time:
		return TypeTimestamp
	case []byte:
		return TypeVarbinary
	default:
		return TypeObject
	}
}
