package generate

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
	"github.com/Lumos-Labs-HQ/synthdb/internal/semantic"
)

// Options controls a generation run.
type Options struct {
	Rows      int            // rows per table; 0 means the default of 100
	TableRows map[string]int // per-table overrides
}

func (o Options) rowsFor(table string) int {
	if n, ok := o.TableRows[table]; ok && n > 0 {
		return n
	}
	if o.Rows > 0 {
		return o.Rows
	}
	return 100
}

// Engine drives row generation: classification once per column, a fresh
// context per row, priority-ordered generation and declaration-ordered
// output, with primary keys recorded into the reference pool.
type Engine struct {
	synth *Synthesizer
	pool  *ReferencePool
}

func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{
		synth: NewSynthesizer(rng),
		pool:  NewReferencePool(),
	}
}

// Pool exposes the reference pool, mainly for tests asserting referential
// validity.
func (e *Engine) Pool() *ReferencePool {
	return e.pool
}

// columnPlan pairs a column with its cached classification and its
// declaration position, so a row can be generated in one order and emitted
// in another.
type columnPlan struct {
	col   schema.Column
	cls   semantic.Classification
	index int
}

type tablePlan struct {
	genOrder []columnPlan
	pkIndex  int
}

func planTable(t *schema.Table) tablePlan {
	plan := tablePlan{
		genOrder: make([]columnPlan, 0, len(t.Columns)),
		pkIndex:  -1,
	}

	for i, col := range t.Columns {
		cls := semantic.Classify(col, t)
		plan.genOrder = append(plan.genOrder, columnPlan{col: col, cls: cls, index: i})

		if plan.pkIndex == -1 {
			if t.PrimaryKey != "" && col.Name == t.PrimaryKey {
				plan.pkIndex = i
			} else if t.PrimaryKey == "" && cls.Type == semantic.PrimaryKey {
				plan.pkIndex = i
			}
		}
	}

	// Highest generation priority first; declaration order breaks ties so
	// the plan is deterministic.
	sort.SliceStable(plan.genOrder, func(a, b int) bool {
		return plan.genOrder[a].cls.Type.GenerationPriority() >
			plan.genOrder[b].cls.Type.GenerationPriority()
	})

	return plan
}

// Run generates rows for every table in the given order and hands each
// completed table to emit. Tables must already be dependency-sorted; the
// pool a table reads from is only ever filled by tables emitted before it.
func (e *Engine) Run(tables []schema.Table, opts Options, emit func(t *schema.Table, rows [][]Value) error) error {
	for i := range tables {
		t := &tables[i]
		rows := e.GenerateTable(t, opts.rowsFor(t.Name))
		if err := emit(t, rows); err != nil {
			return err
		}
	}
	return nil
}

// GenerateTable produces count rows for one table, in declaration column
// order, appending each row's primary key to the table's reference pool.
func (e *Engine) GenerateTable(t *schema.Table, count int) [][]Value {
	plan := planTable(t)

	rows := make([][]Value, 0, count)
	for rowIndex := 0; rowIndex < count; rowIndex++ {
		ctx := NewRowContext()
		row := make([]Value, len(t.Columns))

		for _, cp := range plan.genOrder {
			v := e.generateColumn(cp, ctx, rowIndex)
			row[cp.index] = v
			recordContext(ctx, cp, v)
		}

		if plan.pkIndex >= 0 {
			e.pool.Add(t.Name, row[plan.pkIndex])
		}
		rows = append(rows, row)
	}

	return rows
}

func (e *Engine) generateColumn(cp columnPlan, ctx *RowContext, rowIndex int) Value {
	// Sampled real values beat synthesis, but structural columns must stay
	// consistent with the pool and the sequence.
	if len(cp.col.Samples) > 0 &&
		cp.cls.Type != semantic.ForeignKey && cp.cls.Type != semantic.PrimaryKey {
		sample := cp.col.Samples[e.synth.rng.Intn(len(cp.col.Samples))]
		if cp.col.Type.IsTextLike() {
			return text(sample)
		}
		return literal(sample)
	}
	return e.synth.Synthesize(cp.cls, cp.col, ctx, rowIndex, e.pool)
}

// recordContext writes a generated value into the row context under the
// column's own name, plus derived keys for the roles later columns build on.
func recordContext(ctx *RowContext, cp columnPlan, v Value) {
	if v.Null {
		return
	}
	key := strings.ToLower(cp.col.Name)
	ctx.Set(key, v.Raw)

	switch cp.cls.Type {
	case semantic.FirstName:
		ctx.Set("first_name", v.Raw)
	case semantic.LastName:
		ctx.Set("last_name", v.Raw)
	case semantic.Company:
		ctx.Set("company", v.Raw)
	case semantic.Domain:
		ctx.Set("domain", v.Raw)
	case semantic.Username:
		ctx.Set("username", v.Raw)
	}

	if t, ok := parseTime(v.Raw); ok {
		ctx.SetDate(key, t)
		if cp.cls.Type == semantic.StartDate {
			ctx.SetDate("start_date", t)
		}
	}
}

func parseTime(s string) (time.Time, bool) {
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
