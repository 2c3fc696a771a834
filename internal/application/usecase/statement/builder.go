// Package statement implements the financial statement engine.
package statement

import (
	"github.com/bizsuite/backend/internal/domain/entity"
	"github.com/bizsuite/backend/internal/domain/taxonomy"
)

// groupSums adds up the totals of one statement group, split by the
// taxonomy's flow tag. Categories without totals contribute zero. Totals
// with codes outside the taxonomy never reach the builders; the aggregator
// drops them.
func groupSums(
	totals []entity.CategoryTotal,
	statementType entity.StatementType,
	group entity.CategoryGroup,
) (inflow, outflow int64) {
	for _, t := range totals {
		if t.StatementType != statementType {
			continue
		}
		cat, err := taxonomy.Lookup(t.Category)
		if err != nil || cat.Group != group {
			continue
		}
		if cat.Flow == entity.FlowOutflow {
			outflow += t.Total
		} else {
			inflow += t.Total
		}
	}
	return inflow, outflow
}

// BuildPL rolls category totals up into a Profit & Loss snapshot. Pure
// function of its input; missing categories default to zero.
func BuildPL(totals []entity.CategoryTotal) entity.PLSnapshot {
	revenue, _ := groupSums(totals, entity.StatementTypePL, entity.GroupRevenue)
	_, costOfSales := groupSums(totals, entity.StatementTypePL, entity.GroupCostOfSales)
	_, sga := groupSums(totals, entity.StatementTypePL, entity.GroupSGAndA)
	nonOpIn, nonOpOut := groupSums(totals, entity.StatementTypePL, entity.GroupNonOperating)
	extraIn, extraOut := groupSums(totals, entity.StatementTypePL, entity.GroupExtraordinary)

	snapshot := entity.PLSnapshot{
		Revenue:          revenue,
		CostOfSales:      costOfSales,
		SGA:              sga,
		NonOperatingNet:  nonOpIn - nonOpOut,
		ExtraordinaryNet: extraIn - extraOut,
	}
	snapshot.GrossProfit = snapshot.Revenue - snapshot.CostOfSales
	snapshot.OperatingProfit = snapshot.GrossProfit - snapshot.SGA
	snapshot.OrdinaryProfit = snapshot.OperatingProfit + snapshot.NonOperatingNet
	snapshot.NetProfit = snapshot.OrdinaryProfit + snapshot.ExtraordinaryNet
	return snapshot
}

// BuildBS rolls category totals up into a Balance Sheet snapshot.
// netProfit is the same period's PL result, injected into the retained
// earnings line of equity; it is never stored as its own figure.
func BuildBS(totals []entity.CategoryTotal, netProfit int64) entity.BSSnapshot {
	currentAssets, _ := groupSums(totals, entity.StatementTypeBS, entity.GroupCurrentAssets)
	fixedAssets, _ := groupSums(totals, entity.StatementTypeBS, entity.GroupFixedAssets)
	currentLiabilities, _ := groupSums(totals, entity.StatementTypeBS, entity.GroupCurrentLiabilities)
	longTermLiabilities, _ := groupSums(totals, entity.StatementTypeBS, entity.GroupLongTermLiabilities)
	equityBase, _ := groupSums(totals, entity.StatementTypeBS, entity.GroupEquity)

	snapshot := entity.BSSnapshot{
		CurrentAssets:       currentAssets,
		FixedAssets:         fixedAssets,
		CurrentLiabilities:  currentLiabilities,
		LongTermLiabilities: longTermLiabilities,
		Equity:              equityBase + netProfit,
	}
	snapshot.TotalAssets = snapshot.CurrentAssets + snapshot.FixedAssets
	snapshot.TotalLiabilities = snapshot.CurrentLiabilities + snapshot.LongTermLiabilities
	snapshot.TotalLiabilitiesAndEquity = snapshot.TotalLiabilities + snapshot.Equity
	return snapshot
}

// BuildCF rolls category totals up into a Cash Flow snapshot. netProfit is
// the same period's PL result, the base of operating cash flow. The
// inflow/outflow split comes from the taxonomy's exhaustive flow table;
// the dedicated investment ledger enters through its reserved
// investment_outlay code, additive to the manual investing categories.
func BuildCF(totals []entity.CategoryTotal, netProfit int64) entity.CFSnapshot {
	opIn, opOut := groupSums(totals, entity.StatementTypeCF, entity.GroupOperating)
	invIn, invOut := groupSums(totals, entity.StatementTypeCF, entity.GroupInvesting)
	finIn, finOut := groupSums(totals, entity.StatementTypeCF, entity.GroupFinancing)

	snapshot := entity.CFSnapshot{
		OperatingCF: netProfit + opIn - opOut,
		InvestingCF: invIn - invOut,
		FinancingCF: finIn - finOut,
	}
	snapshot.NetChangeInCash = snapshot.OperatingCF + snapshot.InvestingCF + snapshot.FinancingCF
	return snapshot
}
