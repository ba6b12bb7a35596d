package generate

import (
	"testing"
	"time"
)

func TestContextSetGet(t *testing.T) {
	ctx := NewRowContext()

	ctx.Set("First_Name", "Ada")
	if v, ok := ctx.Get("first_name"); !ok || v != "Ada" {
		t.Errorf("Expected 'Ada' under normalized key, got %q (ok=%v)", v, ok)
	}

	if _, ok := ctx.Get("missing"); ok {
		t.Error("Expected absent key to report not-ok")
	}
}

func TestContextDropsNullAndEmpty(t *testing.T) {
	ctx := NewRowContext()

	ctx.Set("a", "")
	ctx.Set("b", "NULL")

	if _, ok := ctx.Get("a"); ok {
		t.Error("Expected empty value not to be stored")
	}
	if _, ok := ctx.Get("b"); ok {
		t.Error("Expected NULL marker not to be stored")
	}
}

func TestMostRecentStartDate(t *testing.T) {
	ctx := NewRowContext()

	if _, ok := ctx.MostRecentStartDate(); ok {
		t.Error("Expected no start date on fresh context")
	}

	updated := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	ctx.SetDate("updated_at", updated)
	if _, ok := ctx.MostRecentStartDate(); ok {
		t.Error("Expected updated_at not to count as start-like")
	}

	created := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	ctx.SetDate("created_at", created)
	got, ok := ctx.MostRecentStartDate()
	if !ok {
		t.Fatal("Expected created_at to count as start-like")
	}
	if !got.Equal(created) {
		t.Errorf("Expected %v, got %v", created, got)
	}
}
