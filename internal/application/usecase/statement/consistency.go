// Package statement implements the financial statement engine.
package statement

import (
	"fmt"

	"github.com/bizsuite/backend/internal/domain/entity"
)

// CheckConsistency validates cross-statement identities over the three
// snapshots of one range and scope. Violations are reported as warnings,
// never as errors: the underlying ledger does not enforce double-entry
// completeness, so an unbalanced sheet is a data condition to surface, not
// a failure.
func CheckConsistency(bs entity.BSSnapshot, cf entity.CFSnapshot) []entity.Warning {
	var warnings []entity.Warning

	if delta := bs.TotalAssets - bs.TotalLiabilitiesAndEquity; delta != 0 {
		warnings = append(warnings, entity.Warning{
			Code: entity.WarnBalanceSheetDelta,
			Message: fmt.Sprintf("balance sheet does not balance: total assets differ from liabilities and equity by %d minor units",
				delta),
			Delta: delta,
		})
	}

	// NetChangeInCash is computed from the same three components, so a
	// mismatch here signals an implementation bug rather than a data issue.
	if delta := cf.NetChangeInCash - (cf.OperatingCF + cf.InvestingCF + cf.FinancingCF); delta != 0 {
		warnings = append(warnings, entity.Warning{
			Code: entity.WarnCashFlowMismatch,
			Message: fmt.Sprintf("net change in cash deviates from the sum of its components by %d minor units; this indicates a bug",
				delta),
			Delta: delta,
		})
	}

	return warnings
}
