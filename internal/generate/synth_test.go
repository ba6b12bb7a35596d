package generate

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
	"github.com/Lumos-Labs-HQ/synthdb/internal/semantic"
)

func newTestSynth(seed int64) *Synthesizer {
	return NewSynthesizer(rand.New(rand.NewSource(seed)))
}

func textCol(name string) schema.Column {
	return schema.Column{Name: name, Type: schema.TypeVarchar}
}

func TestUsernameDerivedFromContext(t *testing.T) {
	s := newTestSynth(1)
	ctx := NewRowContext()
	ctx.Set("first_name", "Ada")
	ctx.Set("last_name", "Lovelace")

	v := s.Synthesize(semantic.Classification{Type: semantic.Username}, textCol("username"), ctx, 0, NewReferencePool())
	if v.Raw != "ada.lovelace" {
		t.Errorf("Expected 'ada.lovelace', got %q", v.Raw)
	}
}

func TestUsernameFallbackWithoutContext(t *testing.T) {
	s := newTestSynth(1)

	v := s.Synthesize(semantic.Classification{Type: semantic.Username}, textCol("username"), NewRowContext(), 4, NewReferencePool())
	if v.Raw != "user5" {
		t.Errorf("Expected 'user5', got %q", v.Raw)
	}
}

func TestEmailDerivedFromContext(t *testing.T) {
	s := newTestSynth(1)
	ctx := NewRowContext()
	ctx.Set("first_name", "Ada")
	ctx.Set("last_name", "Lovelace")
	ctx.Set("company", "Babbage & Sons")

	v := s.Synthesize(semantic.Classification{Type: semantic.Email}, textCol("email"), ctx, 0, NewReferencePool())
	if v.Raw != "ada.lovelace@babbagesons.com" {
		t.Errorf("Expected 'ada.lovelace@babbagesons.com', got %q", v.Raw)
	}
}

func TestEmailPrefersUsernameAndDomain(t *testing.T) {
	s := newTestSynth(1)
	ctx := NewRowContext()
	ctx.Set("username", "alove")
	ctx.Set("domain", "engine.io")

	v := s.Synthesize(semantic.Classification{Type: semantic.Email}, textCol("email"), ctx, 0, NewReferencePool())
	if v.Raw != "alove@engine.io" {
		t.Errorf("Expected 'alove@engine.io', got %q", v.Raw)
	}
}

func TestFullNameUsesContextParts(t *testing.T) {
	s := newTestSynth(1)
	ctx := NewRowContext()
	ctx.Set("first_name", "Grace")
	ctx.Set("last_name", "Hopper")

	v := s.Synthesize(semantic.Classification{Type: semantic.FullName}, textCol("name"), ctx, 0, NewReferencePool())
	if v.Raw != "Grace Hopper" {
		t.Errorf("Expected 'Grace Hopper', got %q", v.Raw)
	}
}

func TestEndDateFollowsStartDate(t *testing.T) {
	s := newTestSynth(1)
	ctx := NewRowContext()
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	ctx.SetDate("created_at", start)

	col := schema.Column{Name: "ended_at", Type: schema.TypeTimestamp}
	for i := 0; i < 20; i++ {
		v := s.Synthesize(semantic.Classification{Type: semantic.EndDate}, col, ctx, i, NewReferencePool())
		end, err := time.Parse("2006-01-02 15:04:05", v.Raw)
		if err != nil {
			t.Fatalf("Failed to parse end date %q: %v", v.Raw, err)
		}
		if !end.After(start) {
			t.Fatalf("Expected end %v after start %v", end, start)
		}
	}
}

func TestDateColumnsUseDateLayout(t *testing.T) {
	s := newTestSynth(1)
	col := schema.Column{Name: "started_on", Type: schema.TypeDate}

	v := s.Synthesize(semantic.Classification{Type: semantic.StartDate}, col, NewRowContext(), 0, NewReferencePool())
	if _, err := time.Parse("2006-01-02", v.Raw); err != nil {
		t.Errorf("Expected a bare date, got %q: %v", v.Raw, err)
	}
}

func TestDecimalHonorsPrecisionAndScale(t *testing.T) {
	s := newTestSynth(3)
	col := schema.Column{Name: "price", Type: schema.TypeDecimal, Precision: 4, Scale: 2}

	for i := 0; i < 100; i++ {
		v := s.Synthesize(semantic.Classification{Type: semantic.GenericDecimal}, col, NewRowContext(), i, NewReferencePool())
		whole := strings.SplitN(v.Raw, ".", 2)[0]
		n, err := strconv.Atoi(whole)
		if err != nil {
			t.Fatalf("Failed to parse whole part of %q: %v", v.Raw, err)
		}
		if n > 99 {
			t.Fatalf("Whole part %d exceeds precision 4 scale 2 bound", n)
		}
	}
}

func TestForeignKeyDrawsFromPool(t *testing.T) {
	s := newTestSynth(5)
	pool := NewReferencePool()
	pool.Add("companies", literal("1"))
	pool.Add("companies", literal("2"))

	col := schema.Column{Name: "company_id", Type: schema.TypeInteger}
	cls := semantic.Classification{Type: semantic.ForeignKey, RefTable: "companies"}
	for i := 0; i < 30; i++ {
		v := s.Synthesize(cls, col, NewRowContext(), i, pool)
		if v.Raw != "1" && v.Raw != "2" {
			t.Fatalf("Expected a pooled key, got %q", v.Raw)
		}
	}
}

func TestForeignKeyEmptyPoolFallsBack(t *testing.T) {
	s := newTestSynth(5)
	cls := semantic.Classification{Type: semantic.ForeignKey, RefTable: "companies"}

	intCol := schema.Column{Name: "company_id", Type: schema.TypeInteger}
	v := s.Synthesize(cls, intCol, NewRowContext(), 2, NewReferencePool())
	if v.Raw != "3" || v.Quote {
		t.Errorf("Expected unquoted sequential 3, got %q (quote=%v)", v.Raw, v.Quote)
	}

	uuidCol := schema.Column{Name: "company_id", Type: schema.TypeUUID}
	v = s.Synthesize(cls, uuidCol, NewRowContext(), 2, NewReferencePool())
	if len(v.Raw) != 36 || !v.Quote {
		t.Errorf("Expected a quoted UUID fallback, got %q (quote=%v)", v.Raw, v.Quote)
	}
}

func TestPrimaryKeyMatchesColumnType(t *testing.T) {
	s := newTestSynth(5)
	cls := semantic.Classification{Type: semantic.PrimaryKey}

	v := s.Synthesize(cls, schema.Column{Name: "id", Type: schema.TypeBigInt}, NewRowContext(), 0, NewReferencePool())
	if v.Raw != "1" || v.Quote {
		t.Errorf("Expected unquoted 1, got %q (quote=%v)", v.Raw, v.Quote)
	}

	v = s.Synthesize(cls, schema.Column{Name: "code", Type: schema.TypeVarchar}, NewRowContext(), 0, NewReferencePool())
	if v.Raw != "1" || !v.Quote {
		t.Errorf("Expected quoted '1' for a text key, got %q (quote=%v)", v.Raw, v.Quote)
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	cases := []struct {
		cls semantic.Classification
		col schema.Column
	}{
		{semantic.Classification{Type: semantic.Company}, textCol("company")},
		{semantic.Classification{Type: semantic.PrimaryKey}, schema.Column{Name: "id", Type: schema.TypeUUID}},
		{semantic.Classification{Type: semantic.GenericUUID}, schema.Column{Name: "external_ref", Type: schema.TypeUUID}},
		{semantic.Classification{Type: semantic.ForeignKey, RefTable: "users"}, schema.Column{Name: "user_id", Type: schema.TypeUUID}},
	}

	for _, tc := range cases {
		a := newTestSynth(42)
		b := newTestSynth(42)
		for i := 0; i < 10; i++ {
			va := a.Synthesize(tc.cls, tc.col, NewRowContext(), i, NewReferencePool())
			vb := b.Synthesize(tc.cls, tc.col, NewRowContext(), i, NewReferencePool())
			if va.Raw != vb.Raw {
				t.Fatalf("Column %s row %d diverged: %q vs %q", tc.col.Name, i, va.Raw, vb.Raw)
			}
		}
	}
}

// Every defined meaning except Unknown must produce a usable value.
func TestEveryTypeHasAGenerator(t *testing.T) {
	s := newTestSynth(9)
	col := textCol("anything")

	for _, typ := range semantic.All() {
		if typ == semantic.Unknown {
			continue
		}
		v := s.Synthesize(semantic.Classification{Type: typ}, col, NewRowContext(), 0, NewReferencePool())
		if v.Null || v.Raw == "" {
			t.Errorf("Type %s produced no value", typ)
		}
	}
}
