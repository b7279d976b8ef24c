package metadata

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/teiid/teiid-sub017/pkg/core"
)

// Built-in namespace prefixes.
const (
	RelationalURI = "http://www.teiid.org/ext/relational/2012"
	SalesforceURI = "http://www.teiid.org/translator/salesforce/2012"
)

func builtinNamespaces() map[string]string {
	return map[string]string{
		"teiid_rel": RelationalURI,
		"teiid_sf":  SalesforceURI,
	}
}

// expandKey turns prefix:name into {uri}name when the prefix is bound.
// Unbound prefixes are kept as written.
func (b *builder) expandKey(key string) string {
	prefix, local, ok := strings.Cut(key, ":")
	if !ok {
		return key
	}
	if uri, ok := b.namespaces[fold(prefix)]; ok {
		return "{" + uri + "}" + local
	}
	return key
}

// optionText returns the text form of an option value.
func optionText(v core.Expression) string {
	c, ok := v.(*core.Constant)
	if !ok || c.Value == nil {
		return ""
	}
	switch x := c.Value.(type) {
	case string:
		return x
	case *big.Int:
		return x.String()
	case decimal.Decimal:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// optionSetter applies one option value to a record attribute. A nil
// value means the option is being dropped.
type optionSetter func(owner string, v core.Expression) error

func setString(dst *string) optionSetter {
	return func(_ string, v core.Expression) error {
		*dst = optionText(v)
		return nil
	}
}

func setBool(dst *bool, dropped bool) optionSetter {
	return func(owner string, v core.Expression) error {
		if v == nil {
			*dst = dropped
			return nil
		}
		b, err := strconv.ParseBool(optionText(v))
		if err != nil {
			return metadataErrorf(owner, "invalid boolean option value %q", optionText(v))
		}
		*dst = b
		return nil
	}
}

func setInt(dst *int) optionSetter {
	return func(owner string, v core.Expression) error {
		if v == nil {
			*dst = Unset
			return nil
		}
		n, err := strconv.Atoi(optionText(v))
		if err != nil {
			return metadataErrorf(owner, "invalid numeric option value %q", optionText(v))
		}
		*dst = n
		return nil
	}
}

func setInt64(dst *int64) optionSetter {
	return func(owner string, v core.Expression) error {
		if v == nil {
			*dst = Unset
			return nil
		}
		n, err := strconv.ParseInt(optionText(v), 10, 64)
		if err != nil {
			return metadataErrorf(owner, "invalid numeric option value %q", optionText(v))
		}
		*dst = n
		return nil
	}
}

func setEnum[T ~string](dst *T, dropped T, allowed ...T) optionSetter {
	return func(owner string, v core.Expression) error {
		if v == nil {
			*dst = dropped
			return nil
		}
		s := T(strings.ToUpper(optionText(v)))
		for _, a := range allowed {
			if a == s {
				*dst = s
				return nil
			}
		}
		return metadataErrorf(owner, "invalid option value %q", optionText(v))
	}
}

// attributes maps folded option keys to record attribute setters.
type attributes map[string]optionSetter

func tableAttributes(t *Table) attributes {
	return attributes{
		"cardinality":        setInt64(&t.Cardinality),
		"uuid":               setString(&t.UUID),
		"nameinsource":       setString(&t.NameInSource),
		"updatable":          setBool(&t.Updatable, false),
		"annotation":         setString(&t.Annotation),
		"materialized":       setBool(&t.Materialized, false),
		"materialized_table": setString(&t.MaterializedTable),
	}
}

func columnAttributes(c *Column) attributes {
	return attributes{
		"uuid":              setString(&c.UUID),
		"nameinsource":      setString(&c.NameInSource),
		"case_sensitive":    setBool(&c.CaseSensitive, false),
		"selectable":        setBool(&c.Selectable, true),
		"updatable":         setBool(&c.Updatable, true),
		"signed":            setBool(&c.Signed, false),
		"currency":          setBool(&c.Currency, false),
		"fixed_length":      setBool(&c.FixedLength, false),
		"searchable":        setEnum(&c.SearchType, Searchable, Searchable, Unsearchable, LikeOnly, AllExceptLike),
		"min_value":         setString(&c.MinValue),
		"max_value":         setString(&c.MaxValue),
		"char_octet_length": setInt(&c.CharOctetLength),
		"native_type":       setString(&c.NativeType),
		"radix":             setInt(&c.Radix),
		"null_value_count":  setInt(&c.NullValues),
		"distinct_values":   setInt(&c.DistinctValues),
		"annotation":        setString(&c.Annotation),
	}
}

func procedureAttributes(p *Procedure) attributes {
	return attributes{
		"uuid":         setString(&p.UUID),
		"nameinsource": setString(&p.NameInSource),
		"annotation":   setString(&p.Annotation),
		"updatecount":  setInt(&p.UpdateCount),
	}
}

func parameterAttributes(p *ProcedureParameter) attributes {
	return attributes{
		"uuid":         setString(&p.UUID),
		"nameinsource": setString(&p.NameInSource),
		"annotation":   setString(&p.Annotation),
	}
}

func functionAttributes(f *FunctionMethod) attributes {
	attrs := attributes{
		"uuid":         setString(&f.UUID),
		"nameinsource": setString(&f.NameInSource),
		"annotation":   setString(&f.Annotation),
		"category":     setString(&f.Category),
		"determinism": setEnum(&f.Determinism, Deterministic,
			Deterministic, CommandDeterministic, SessionDeterministic, UserDeterministic, Nondeterministic),
		"null-on-null": setBool(&f.NullOnNull, false),
		"java_class":   setString(&f.InvocationClass),
		"java_method":  setString(&f.InvocationMeth),
		"varargs":      setBool(&f.VarArgs, false),
		"aggregate": func(owner string, v core.Expression) error {
			var on bool
			if err := setBool(&on, false)(owner, v); err != nil {
				return err
			}
			switch {
			case on && f.Aggregate == nil:
				f.Aggregate = &AggregateAttributes{}
			case !on:
				f.Aggregate = nil
			}
			return nil
		},
	}
	aggregateFlag := func(field func(a *AggregateAttributes) *bool) optionSetter {
		return func(owner string, v core.Expression) error {
			if f.Aggregate == nil {
				f.Aggregate = &AggregateAttributes{}
			}
			return setBool(field(f.Aggregate), false)(owner, v)
		}
	}
	attrs["allows-distinct"] = aggregateFlag(func(a *AggregateAttributes) *bool { return &a.AllowsDistinct })
	attrs["allows-orderby"] = aggregateFlag(func(a *AggregateAttributes) *bool { return &a.AllowsOrderBy })
	attrs["analytic"] = aggregateFlag(func(a *AggregateAttributes) *bool { return &a.Analytic })
	attrs["decomposable"] = aggregateFlag(func(a *AggregateAttributes) *bool { return &a.Decomposable })
	attrs["uses-distinct-rows"] = aggregateFlag(func(a *AggregateAttributes) *bool { return &a.UsesDistinctRows })
	return attrs
}

// applyOption sets a built-in attribute or, for any other key, the record's
// property map. A nil value drops the option.
func (b *builder) applyOption(owner string, attrs attributes, props *Properties, key string, v core.Expression) error {
	if set, ok := attrs[fold(key)]; ok {
		return set(owner, v)
	}
	key = b.expandKey(key)
	if v == nil {
		delete(*props, key)
		return nil
	}
	if *props == nil {
		*props = Properties{}
	}
	(*props)[key] = optionText(v)
	return nil
}

// applyOptions applies a CREATE time OPTIONS list.
func (b *builder) applyOptions(owner string, attrs attributes, props *Properties, list []*core.OptionEntry) error {
	for _, o := range list {
		if err := b.applyOption(owner, attrs, props, o.Key, o.Value); err != nil {
			return err
		}
	}
	return nil
}
