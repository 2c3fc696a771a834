// Package statement implements the financial statement engine.
package statement

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bizsuite/backend/internal/domain/entity"
	"github.com/bizsuite/backend/internal/domain/taxonomy"
)

// fetchEntries runs every source fetch concurrently and joins with
// fail-soft semantics: a failed source is reported, not fatal. Entries are
// returned in source order so identical inputs produce identical output.
func fetchEntries(
	ctx context.Context,
	sources []Source,
	dateRange entity.DateRange,
	businessID *uuid.UUID,
) ([]entity.LedgerEntry, []entity.SourceType) {
	perSource := make([][]entity.LedgerEntry, len(sources))
	var (
		mu     sync.Mutex
		failed []entity.SourceType
		wg     sync.WaitGroup
	)

	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()

			entries, err := src.Entries(ctx, dateRange, businessID)
			if err != nil {
				slog.Warn("Source fetch failed, continuing without it",
					"source", string(src.Type()),
					"error", err,
				)
				mu.Lock()
				failed = append(failed, src.Type())
				mu.Unlock()
				return
			}
			perSource[i] = entries
		}(i, src)
	}
	wg.Wait()

	var all []entity.LedgerEntry
	for _, entries := range perSource {
		all = append(all, entries...)
	}

	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })
	return all, failed
}

// groupingKey is the aggregation key: one total per distinct key per request.
type groupingKey struct {
	statementType entity.StatementType
	category      string
	subCategory   string
}

// Aggregate groups canonical entries by (statement type, category,
// subcategory) and sums their minor-unit amounts. Entries whose category
// is not in the taxonomy, or whose statement type disagrees with the
// taxonomy's declaration for that category, are dropped with a warning;
// neither is fatal to the statement.
func Aggregate(entries []entity.LedgerEntry) ([]entity.CategoryTotal, []entity.Warning) {
	sums := make(map[groupingKey]int64)
	var warnings []entity.Warning

	for _, e := range entries {
		cat, err := taxonomy.Lookup(e.Category)
		if err != nil {
			warnings = append(warnings, entity.Warning{
				Code: entity.WarnUnknownCategory,
				Message: fmt.Sprintf("entry %s from %s references unknown category %q and was excluded",
					e.ProvenanceRef, e.SourceType, e.Category),
			})
			continue
		}

		if cat.StatementType != e.StatementType {
			warnings = append(warnings, entity.Warning{
				Code: entity.WarnStatementTypeMismatch,
				Message: fmt.Sprintf("entry %s carries statement type %q but category %q belongs to %q; entry excluded",
					e.ProvenanceRef, e.StatementType, e.Category, cat.StatementType),
			})
			continue
		}

		key := groupingKey{
			statementType: e.StatementType,
			category:      e.Category,
			subCategory:   e.SubCategory,
		}
		sums[key] += e.AmountMinorUnits
	}

	totals := make([]entity.CategoryTotal, 0, len(sums))
	for key, total := range sums {
		totals = append(totals, entity.CategoryTotal{
			StatementType: key.statementType,
			Category:      key.category,
			SubCategory:   key.subCategory,
			Total:         total,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].StatementType != totals[j].StatementType {
			return totals[i].StatementType < totals[j].StatementType
		}
		if totals[i].Category != totals[j].Category {
			return totals[i].Category < totals[j].Category
		}
		return totals[i].SubCategory < totals[j].SubCategory
	})

	return totals, warnings
}

// filterTotals returns the totals belonging to one statement type.
func filterTotals(totals []entity.CategoryTotal, statementType entity.StatementType) []entity.CategoryTotal {
	filtered := make([]entity.CategoryTotal, 0, len(totals))
	for _, t := range totals {
		if t.StatementType == statementType {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
