package parser

// ParseInfo carries per-call parse options. The zero value is not the
// default; use DefaultParseInfo.
type ParseInfo struct {
	// AnsiQuotedIdentifiers makes "x" an identifier. When false a double
	// quoted body is a string literal.
	AnsiQuotedIdentifiers bool
	// DecimalAsDouble parses 1.5 style literals as double instead of
	// bigdecimal.
	DecimalAsDouble bool
}

// DefaultParseInfo returns the options used by the package level functions.
func DefaultParseInfo() ParseInfo {
	return ParseInfo{AnsiQuotedIdentifiers: true}
}
