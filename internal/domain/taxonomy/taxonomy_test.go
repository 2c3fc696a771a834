package taxonomy

import (
	"errors"
	"testing"

	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
)

func TestLookup(t *testing.T) {
	t.Run("known code returns its category", func(t *testing.T) {
		cat, err := Lookup("sales_revenue")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cat.StatementType != entity.StatementTypePL {
			t.Errorf("expected statement type pl, got %s", cat.StatementType)
		}
		if cat.Group != entity.GroupRevenue {
			t.Errorf("expected group revenue, got %s", cat.Group)
		}
		if cat.Flow != entity.FlowInflow {
			t.Errorf("expected flow inflow, got %s", cat.Flow)
		}
	})

	t.Run("unknown code is rejected, never guessed", func(t *testing.T) {
		_, err := Lookup("foo_bar")

		if !errors.Is(err, domainerror.ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
		var stmErr *domainerror.StatementError
		if !errors.As(err, &stmErr) || stmErr.Code != domainerror.ErrCodeUnknownCategory {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeUnknownCategory, err)
		}
	})
}

func TestGroupCodes(t *testing.T) {
	t.Run("SG&A membership includes payroll and agency commission lines", func(t *testing.T) {
		codes := GroupCodes(entity.StatementTypePL, entity.GroupSGAndA)

		want := map[string]bool{
			"personnel_expense":         false,
			"agency_commission_expense": false,
			"business_expense":          false,
		}
		for _, code := range codes {
			if _, ok := want[code]; ok {
				want[code] = true
			}
		}
		for code, seen := range want {
			if !seen {
				t.Errorf("expected %s in the SG&A group", code)
			}
		}
	})

	t.Run("membership is sorted and stable", func(t *testing.T) {
		codes := GroupCodes(entity.StatementTypeCF, entity.GroupOperating)

		if len(codes) != 8 {
			t.Fatalf("expected the 8 operating categories, got %d", len(codes))
		}
		for i := 1; i < len(codes); i++ {
			if codes[i-1] >= codes[i] {
				t.Errorf("codes not sorted: %v", codes)
			}
		}
	})
}

func TestTableConsistency(t *testing.T) {
	t.Run("every category's group belongs to its statement type", func(t *testing.T) {
		plGroups := map[entity.CategoryGroup]bool{
			entity.GroupRevenue: true, entity.GroupCostOfSales: true, entity.GroupSGAndA: true,
			entity.GroupNonOperating: true, entity.GroupExtraordinary: true,
		}
		bsGroups := map[entity.CategoryGroup]bool{
			entity.GroupCurrentAssets: true, entity.GroupFixedAssets: true,
			entity.GroupCurrentLiabilities: true, entity.GroupLongTermLiabilities: true,
			entity.GroupEquity: true,
		}
		cfGroups := map[entity.CategoryGroup]bool{
			entity.GroupOperating: true, entity.GroupInvesting: true, entity.GroupFinancing: true,
		}

		for _, cat := range All() {
			var ok bool
			switch cat.StatementType {
			case entity.StatementTypePL:
				ok = plGroups[cat.Group]
			case entity.StatementTypeBS:
				ok = bsGroups[cat.Group]
			case entity.StatementTypeCF:
				ok = cfGroups[cat.Group]
			}
			if !ok {
				t.Errorf("category %s has group %s outside statement %s", cat.Code, cat.Group, cat.StatementType)
			}
		}
	})

	t.Run("every category carries a flow tag and a label", func(t *testing.T) {
		for _, cat := range All() {
			if cat.Flow != entity.FlowInflow && cat.Flow != entity.FlowOutflow {
				t.Errorf("category %s has no flow tag", cat.Code)
			}
			if cat.Label == "" {
				t.Errorf("category %s has no label", cat.Code)
			}
			if cat.Code == "" {
				t.Error("category with empty code in table")
			}
		}
	})

	t.Run("table key always matches the category code", func(t *testing.T) {
		for _, cat := range All() {
			if !Contains(cat.Code) {
				t.Errorf("All returned %s but Contains denies it", cat.Code)
			}
			found, err := Lookup(cat.Code)
			if err != nil {
				t.Fatalf("Lookup(%s) failed: %v", cat.Code, err)
			}
			if found != cat {
				t.Errorf("Lookup(%s) returned %+v, expected %+v", cat.Code, found, cat)
			}
		}
	})
}
