package generate

import "math/rand"

// ReferencePool accumulates the primary-key values emitted per table so
// foreign keys in downstream tables can point at rows that exist. Entries
// only ever grow during a run; tables read pools other than their own.
type ReferencePool struct {
	keys map[string][]Value
}

func NewReferencePool() *ReferencePool {
	return &ReferencePool{keys: make(map[string][]Value)}
}

// Add appends one primary-key value for the table. NULLs are never pooled.
func (p *ReferencePool) Add(table string, v Value) {
	if v.Null || v.Raw == "" {
		return
	}
	p.keys[table] = append(p.keys[table], v)
}

// Random draws one previously emitted key uniformly. The second return is
// false when the table is unknown or its pool is still empty.
func (p *ReferencePool) Random(table string, rng *rand.Rand) (Value, bool) {
	keys := p.keys[table]
	if len(keys) == 0 {
		return NullValue, false
	}
	return keys[rng.Intn(len(keys))], true
}

// Count returns how many keys the table has emitted so far.
func (p *ReferencePool) Count(table string) int {
	return len(p.keys[table])
}
