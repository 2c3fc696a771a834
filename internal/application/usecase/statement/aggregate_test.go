package statement

import (
	"reflect"
	"testing"
	"time"

	"github.com/bizsuite/backend/internal/domain/entity"
)

func entry(statementType entity.StatementType, category, subCategory string, amount int64) entity.LedgerEntry {
	return entity.LedgerEntry{
		SourceType:       entity.SourceManualEntry,
		StatementType:    statementType,
		Category:         category,
		SubCategory:      subCategory,
		AmountMinorUnits: amount,
		Date:             time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestAggregate(t *testing.T) {
	t.Run("sums entries sharing a grouping key", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			entry(entity.StatementTypePL, "sales_revenue", "", 100_000),
			entry(entity.StatementTypePL, "sales_revenue", "", 250_000),
			entry(entity.StatementTypePL, "merchandise_cost", "", 80_000),
		}

		totals, warnings := Aggregate(entries)

		if len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", warnings)
		}
		want := []entity.CategoryTotal{
			{StatementType: entity.StatementTypePL, Category: "merchandise_cost", Total: 80_000},
			{StatementType: entity.StatementTypePL, Category: "sales_revenue", Total: 350_000},
		}
		if !reflect.DeepEqual(totals, want) {
			t.Errorf("expected totals %v, got %v", want, totals)
		}
	})

	t.Run("subcategories stay distinct grouping keys", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			entry(entity.StatementTypeCF, "investment_outlay", "machinery", 40_000),
			entry(entity.StatementTypeCF, "investment_outlay", "vehicles", 20_000),
			entry(entity.StatementTypeCF, "investment_outlay", "machinery", 10_000),
		}

		totals, _ := Aggregate(entries)

		if len(totals) != 2 {
			t.Fatalf("expected 2 totals, got %d", len(totals))
		}
		if totals[0].SubCategory != "machinery" || totals[0].Total != 50_000 {
			t.Errorf("expected machinery total 50000, got %+v", totals[0])
		}
		if totals[1].SubCategory != "vehicles" || totals[1].Total != 20_000 {
			t.Errorf("expected vehicles total 20000, got %+v", totals[1])
		}
	})

	t.Run("unknown category is dropped with a warning, other totals unaffected", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			entry(entity.StatementTypePL, "sales_revenue", "", 100_000),
			entry(entity.StatementTypePL, "foo_bar", "", 999_999),
		}

		totals, warnings := Aggregate(entries)

		if len(warnings) != 1 {
			t.Fatalf("expected 1 warning, got %d", len(warnings))
		}
		if warnings[0].Code != entity.WarnUnknownCategory {
			t.Errorf("expected warning code %s, got %s", entity.WarnUnknownCategory, warnings[0].Code)
		}
		if len(totals) != 1 || totals[0].Category != "sales_revenue" || totals[0].Total != 100_000 {
			t.Errorf("expected only the sales_revenue total, got %v", totals)
		}
	})

	t.Run("statement type disagreeing with the taxonomy drops the entry", func(t *testing.T) {
		// cash is a BS category; an entry claiming it is PL is inconsistent.
		entries := []entity.LedgerEntry{
			entry(entity.StatementTypePL, "cash", "", 10_000),
			entry(entity.StatementTypeBS, "cash", "", 20_000),
		}

		totals, warnings := Aggregate(entries)

		if len(warnings) != 1 {
			t.Fatalf("expected 1 warning, got %d", len(warnings))
		}
		if warnings[0].Code != entity.WarnStatementTypeMismatch {
			t.Errorf("expected warning code %s, got %s", entity.WarnStatementTypeMismatch, warnings[0].Code)
		}
		if len(totals) != 1 || totals[0].Total != 20_000 {
			t.Errorf("expected only the consistent entry, got %v", totals)
		}
	})

	t.Run("output ordering is deterministic regardless of input order", func(t *testing.T) {
		forward := []entity.LedgerEntry{
			entry(entity.StatementTypePL, "sales_revenue", "", 1),
			entry(entity.StatementTypeBS, "cash", "", 2),
			entry(entity.StatementTypeCF, "depreciation", "", 3),
		}
		backward := []entity.LedgerEntry{forward[2], forward[1], forward[0]}

		a, _ := Aggregate(forward)
		b, _ := Aggregate(backward)

		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected identical totals, got %v and %v", a, b)
		}
	})

	t.Run("empty input yields no totals and no warnings", func(t *testing.T) {
		totals, warnings := Aggregate(nil)

		if len(totals) != 0 || len(warnings) != 0 {
			t.Errorf("expected empty output, got %v / %v", totals, warnings)
		}
	})
}
