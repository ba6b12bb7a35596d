package sorter

import (
	"testing"

	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

func table(name string, fks ...schema.ForeignKey) schema.Table {
	return schema.Table{Name: name, ForeignKeys: fks}
}

func fk(column, refTable string) schema.ForeignKey {
	return schema.ForeignKey{Column: column, RefTable: refTable, RefColumn: "id"}
}

func positions(order []schema.Table) map[string]int {
	pos := make(map[string]int, len(order))
	for i, t := range order {
		pos[t.Name] = i
	}
	return pos
}

func TestSortReferencedTablesFirst(t *testing.T) {
	tables := []schema.Table{
		table("order_items", fk("order_id", "orders"), fk("product_id", "products")),
		table("orders", fk("user_id", "users")),
		table("products"),
		table("users"),
	}

	result := Sort(tables)

	if len(result.Cyclic) != 0 {
		t.Fatalf("Expected no cycle, got %v", result.Cyclic)
	}
	if len(result.Order) != 4 {
		t.Fatalf("Expected 4 tables in order, got %d", len(result.Order))
	}

	pos := positions(result.Order)
	if pos["users"] > pos["orders"] {
		t.Errorf("Expected users before orders, got order %v", pos)
	}
	if pos["orders"] > pos["order_items"] {
		t.Errorf("Expected orders before order_items, got order %v", pos)
	}
	if pos["products"] > pos["order_items"] {
		t.Errorf("Expected products before order_items, got order %v", pos)
	}
}

func TestSortEveryTableExactlyOnce(t *testing.T) {
	tables := []schema.Table{
		table("a", fk("b_id", "b")),
		table("b", fk("c_id", "c")),
		table("c"),
		table("d"),
	}

	result := Sort(tables)

	seen := make(map[string]int)
	for _, tab := range result.Order {
		seen[tab.Name]++
	}
	for _, name := range []string{"a", "b", "c", "d"} {
		if seen[name] != 1 {
			t.Errorf("Expected table %s to appear exactly once, got %d", name, seen[name])
		}
	}
}

func TestSortIgnoresSelfReference(t *testing.T) {
	tables := []schema.Table{
		table("categories", fk("parent_id", "categories")),
	}

	result := Sort(tables)

	if len(result.Cyclic) != 0 {
		t.Errorf("Expected self-reference not to count as cycle, got %v", result.Cyclic)
	}
	if len(result.Order) != 1 || result.Order[0].Name != "categories" {
		t.Errorf("Expected [categories], got %v", result.Order)
	}
}

func TestSortIgnoresUnknownReferencedTable(t *testing.T) {
	tables := []schema.Table{
		table("events", fk("actor_id", "missing_table")),
	}

	result := Sort(tables)

	if len(result.Cyclic) != 0 {
		t.Errorf("Expected no cycle with unknown reference, got %v", result.Cyclic)
	}
	if len(result.Order) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(result.Order))
	}
}

func TestSortCycleFallsBackToInputOrder(t *testing.T) {
	tables := []schema.Table{
		table("standalone"),
		table("x", fk("y_id", "y")),
		table("y", fk("x_id", "x")),
	}

	result := Sort(tables)

	if len(result.Cyclic) != 2 {
		t.Fatalf("Expected 2 cyclic tables, got %v", result.Cyclic)
	}
	if len(result.Order) != 3 {
		t.Fatalf("Expected all 3 tables placed, got %d", len(result.Order))
	}

	pos := positions(result.Order)
	// The cyclic residue keeps its input order: x before y.
	if pos["x"] > pos["y"] {
		t.Errorf("Expected cyclic fallback to keep input order, got %v", pos)
	}
}
