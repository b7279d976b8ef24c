package metadata

import (
	"slices"
	"sort"
	"strings"
	"sync"
)

// Store collects the schemas of a virtual database and resolves the
// references between them. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	// schemas maps folded schema names to schemas: "parts" → *Schema
	schemas map[string]*Schema

	// registry holds every table in the order schemas were added.
	registry []*Table

	// tables maps folded qualified names to registry indexes: "parts.supplier" → 3
	tables map[string]int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		schemas: make(map[string]*Schema),
		tables:  make(map[string]int),
	}
}

// AddSchema registers a schema and its tables.
func (s *Store) AddSchema(schema *Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := fold(schema.Name)
	if _, ok := s.schemas[key]; ok {
		return &DuplicateRecordError{Kind: "schema", Name: schema.Name}
	}
	s.schemas[key] = schema
	for _, t := range schema.Tables {
		s.tables[fold(t.FullName)] = len(s.registry)
		s.registry = append(s.registry, t)
	}
	return nil
}

// Schema returns the schema with the given name.
func (s *Store) Schema(name string) (*Schema, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	schema, ok := s.schemas[fold(name)]
	return schema, ok
}

// Schemas returns all schemas ordered by name.
func (s *Store) Schemas() []*Schema {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Schema, 0, len(s.schemas))
	for _, schema := range s.schemas {
		out = append(out, schema)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Table resolves a table name. A qualified name is looked up directly; an
// unqualified one is looked up in the schema named by defaultSchema.
func (s *Store) Table(name, defaultSchema string) (*Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.tableIndex(name, defaultSchema)
	if !ok {
		return nil, false
	}
	return s.registry[i], true
}

func (s *Store) tableIndex(name, defaultSchema string) (int, bool) {
	if i, ok := s.tables[fold(name)]; ok {
		return i, true
	}
	if !strings.Contains(name, ".") && defaultSchema != "" {
		i, ok := s.tables[fold(defaultSchema+"."+name)]
		return i, ok
	}
	return -1, false
}

// Tables returns the table registry. KeyRef.Table indexes this slice.
func (s *Store) Tables() []*Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.registry)
}

// Key returns the table and key a resolved foreign key points at.
func (s *Store) Key(ref KeyRef) (*Table, *KeyRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ref.Table < 0 || ref.Table >= len(s.registry) {
		return nil, nil, false
	}
	t := s.registry[ref.Table]
	key := keyAt(t, ref.Key)
	if key == nil {
		return nil, nil, false
	}
	return t, key, true
}

// keyAt returns the primary key for 0 and UniqueKeys[i-1] otherwise.
func keyAt(t *Table, i int) *KeyRecord {
	switch {
	case i == 0:
		return t.PrimaryKey
	case i > 0 && i <= len(t.UniqueKeys):
		return t.UniqueKeys[i-1]
	}
	return nil
}

// ResolveForeignKeys links every foreign key to the primary or unique key
// it references. A foreign key without a column list references the
// primary key of its target.
func (s *Store) ResolveForeignKeys() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, schema := range s.schemas {
		for _, t := range schema.Tables {
			for _, fk := range t.ForeignKeys {
				if err := s.resolve(schema, t, fk); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *Store) resolve(schema *Schema, t *Table, fk *ForeignKey) error {
	ti, ok := s.tableIndex(fk.ReferenceTableName, schema.Name)
	if !ok {
		return metadataErrorf(t.FullName, "referenced table %s not found", fk.ReferenceTableName)
	}
	target := s.registry[ti]

	ki := 0
	if len(fk.ReferenceColumns) == 0 {
		if target.PrimaryKey == nil {
			return metadataErrorf(t.FullName, "referenced table %s has no primary key", target.FullName)
		}
	} else {
		candidates := append([]*KeyRecord{target.PrimaryKey}, target.UniqueKeys...)
		ki = slices.IndexFunc(candidates, func(k *KeyRecord) bool {
			return k != nil && sameColumns(k.ColumnNames, fk.ReferenceColumns)
		})
		if ki < 0 {
			return metadataErrorf(t.FullName, "no primary or unique key of %s matches (%s)",
				target.FullName, strings.Join(fk.ReferenceColumns, ", "))
		}
	}
	key := keyAt(target, ki)
	if len(key.Columns) != len(fk.Columns) {
		return metadataErrorf(t.FullName, "foreign key has %d columns but the key of %s has %d",
			len(fk.Columns), target.FullName, len(key.Columns))
	}

	fk.Reference = &KeyRef{Table: ti, Key: ki}
	fk.ReferenceTable = target.FullName
	return nil
}

// sameColumns reports whether two column lists name the same columns,
// ignoring order and case.
func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	fa := make([]string, len(a))
	fb := make([]string, len(b))
	for i := range a {
		fa[i], fb[i] = fold(a[i]), fold(b[i])
	}
	slices.Sort(fa)
	slices.Sort(fb)
	return slices.Equal(fa, fb)
}
