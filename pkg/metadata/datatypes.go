package metadata

import (
	"sort"
	"sync"

	"golang.org/x/text/cases"

	"github.com/teiid/teiid-sub017/pkg/core"
)

// Datatype describes a type that columns and parameters may declare.
// Builtin types mirror the runtime types; user defined types (UDTs) map a
// new name onto one of them.
type Datatype struct {
	Name        string        `json:"name" yaml:"name"`
	RuntimeType core.DataType `json:"-" yaml:"-"`
	Length      int           `json:"length,omitempty" yaml:"length,omitempty"`
	Precision   int           `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale       int           `json:"scale,omitempty" yaml:"scale,omitempty"`
	Radix       int           `json:"radix,omitempty" yaml:"radix,omitempty"`
	Builtin     bool          `json:"builtin" yaml:"builtin"`
}

// Default sizes applied when a declaration gives none.
const (
	DefaultStringLength    = 4000
	DefaultVarbinaryLength = 8192
)

var builtinSizes = map[core.DataType]Datatype{
	core.TypeString:     {Length: DefaultStringLength},
	core.TypeChar:       {Length: 1},
	core.TypeVarbinary:  {Length: DefaultVarbinaryLength},
	core.TypeByte:       {Precision: 3, Radix: 10},
	core.TypeShort:      {Precision: 5, Radix: 10},
	core.TypeInteger:    {Precision: 10, Radix: 10},
	core.TypeLong:       {Precision: 19, Radix: 10},
	core.TypeBigInteger: {Precision: 4000, Radix: 10},
	core.TypeFloat:      {Precision: 20, Radix: 2},
	core.TypeDouble:     {Precision: 20, Radix: 2},
	core.TypeBigDecimal: {Precision: 4000, Radix: 10},
}

// Datatypes is the registry of known type names. Lookups are case
// insensitive and resolve the SQL aliases (varchar, tinyint, smallint,
// bigint, real, decimal). It is safe for concurrent use.
type Datatypes struct {
	mu     sync.RWMutex
	byName map[string]*Datatype
}

// DefaultDatatypes returns a registry holding every builtin runtime type.
func DefaultDatatypes() *Datatypes {
	d := &Datatypes{byName: make(map[string]*Datatype)}
	for t := core.TypeString; t <= core.TypeJSON; t++ {
		dt := builtinSizes[t]
		dt.Name = t.String()
		dt.RuntimeType = t
		dt.Builtin = true
		d.byName[fold(dt.Name)] = &dt
	}
	return d
}

// Register adds a user defined type.
func (d *Datatypes) Register(dt *Datatype) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := fold(dt.Name)
	if _, ok := d.byName[key]; ok {
		return &DuplicateRecordError{Kind: "datatype", Name: dt.Name}
	}
	if _, ok := core.LookupDataType(dt.Name); ok {
		return &DuplicateRecordError{Kind: "datatype", Name: dt.Name}
	}
	d.byName[key] = dt
	return nil
}

// Lookup resolves a declared type name.
func (d *Datatypes) Lookup(name string) (*Datatype, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if dt, ok := d.byName[fold(name)]; ok {
		return dt, true
	}
	if t, ok := core.LookupDataType(name); ok {
		dt, ok := d.byName[fold(t.String())]
		return dt, ok
	}
	return nil, false
}

// Names returns the registered names in sorted order.
func (d *Datatypes) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.byName))
	for _, dt := range d.byName {
		names = append(names, dt.Name)
	}
	sort.Strings(names)
	return names
}

// fold returns the case folded form used for every name lookup. A Caser
// keeps state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
