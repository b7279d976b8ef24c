package core

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/mitchellh/copystructure"
	"github.com/shopspring/decimal"
)

// cloneConfig copies value types whose state lives in unexported fields.
// Decimal and Time values are immutable and are shared as is.
var cloneConfig = copystructure.Config{
	Copiers: map[reflect.Type]copystructure.CopierFunc{
		reflect.TypeOf(big.Int{}): func(v any) (any, error) {
			src := v.(big.Int)
			var dst big.Int
			dst.Set(&src)
			return dst, nil
		},
		reflect.TypeOf(decimal.Decimal{}): func(v any) (any, error) {
			return v.(decimal.Decimal), nil
		},
		reflect.TypeOf(time.Time{}): func(v any) (any, error) {
			return v.(time.Time), nil
		},
	},
}

// Clone returns a deep copy of node that shares no memory with it.
func Clone[T Node](node T) T {
	out, err := cloneConfig.Copy(node)
	if err != nil {
		// Nodes contain only plain data; a copy failure is a programming error.
		panic(fmt.Sprintf("core: clone %T: %v", node, err))
	}
	return out.(T)
}

// Equal reports whether two nodes are structurally identical.
func Equal(a, b Node) bool {
	return reflect.DeepEqual(a, b)
}
