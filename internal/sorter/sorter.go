package sorter

import (
	"sort"

	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

// Result is the insertion order computed from foreign-key edges plus the
// tables Kahn's algorithm could not place because they sit on a cycle.
// Cyclic tables are appended to Order in their original input position, so
// Order always contains every table exactly once.
type Result struct {
	Order  []schema.Table
	Cyclic []string
}

// Sort orders tables so that every referenced table precedes the tables
// referencing it. Edges run from the referenced table to the referencing
// table; self-references are skipped so they never block resolution.
// Foreign keys pointing at tables missing from the input are ignored here
// and degrade to default values at generation time.
func Sort(tables []schema.Table) Result {
	index := make(map[string]int, len(tables))
	for i, t := range tables {
		index[t.Name] = i
	}

	inDegree := make(map[string]int, len(tables))
	successors := make(map[string][]string, len(tables))
	for _, t := range tables {
		if _, ok := inDegree[t.Name]; !ok {
			inDegree[t.Name] = 0
		}
		for _, fk := range t.ForeignKeys {
			if fk.RefTable == t.Name {
				continue
			}
			if _, ok := index[fk.RefTable]; !ok {
				continue
			}
			successors[fk.RefTable] = append(successors[fk.RefTable], t.Name)
			inDegree[t.Name]++
		}
	}

	var ready []string
	for name, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}
	// Alphabetical among simultaneously-ready tables keeps runs stable for
	// diffing. Dependent tables still always come after their parents.
	sort.Strings(ready)

	placed := make(map[string]bool, len(tables))
	var order []schema.Table
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		placed[name] = true
		order = append(order, tables[index[name]])

		var woken []string
		for _, succ := range successors[name] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				woken = append(woken, succ)
			}
		}
		sort.Strings(woken)
		ready = append(ready, woken...)
	}

	// Whatever remains is on a cycle. Fall back to input order for the
	// residue; forward references inside it are tolerated by the deferred
	// constraint mode of the output transaction.
	var cyclic []string
	for _, t := range tables {
		if !placed[t.Name] {
			cyclic = append(cyclic, t.Name)
			order = append(order, t)
		}
	}

	return Result{Order: order, Cyclic: cyclic}
}
