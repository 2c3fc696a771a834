// Package entity defines the core business entities for the domain layer.
package entity

// StatementType identifies which financial statement a category belongs to.
type StatementType string

const (
	StatementTypePL StatementType = "pl"
	StatementTypeBS StatementType = "bs"
	StatementTypeCF StatementType = "cf"
)

// IsValid reports whether the statement type is one of pl, bs, or cf.
func (t StatementType) IsValid() bool {
	return t == StatementTypePL || t == StatementTypeBS || t == StatementTypeCF
}

// CategoryGroup is the rollup group a category belongs to within its statement.
type CategoryGroup string

const (
	// PL groups
	GroupRevenue       CategoryGroup = "revenue"
	GroupCostOfSales   CategoryGroup = "cost_of_sales"
	GroupSGAndA        CategoryGroup = "sg_and_a"
	GroupNonOperating  CategoryGroup = "non_operating"
	GroupExtraordinary CategoryGroup = "extraordinary"

	// BS groups
	GroupCurrentAssets       CategoryGroup = "current_assets"
	GroupFixedAssets         CategoryGroup = "fixed_assets"
	GroupCurrentLiabilities  CategoryGroup = "current_liabilities"
	GroupLongTermLiabilities CategoryGroup = "long_term_liabilities"
	GroupEquity              CategoryGroup = "equity"

	// CF groups
	GroupOperating CategoryGroup = "operating"
	GroupInvesting CategoryGroup = "investing"
	GroupFinancing CategoryGroup = "financing"
)

// CategoryFlow is the sign tag for a category: inflow totals are added into
// a rollup, outflow totals are subtracted. The tag lives in the taxonomy so
// that no call site re-declares sign conventions.
type CategoryFlow string

const (
	FlowInflow  CategoryFlow = "inflow"
	FlowOutflow CategoryFlow = "outflow"
)

// Category is one row of the category taxonomy. The taxonomy is a closed,
// versioned set; Category values are immutable reference data.
type Category struct {
	Code          string
	StatementType StatementType
	Group         CategoryGroup
	Flow          CategoryFlow
	Label         string
}
