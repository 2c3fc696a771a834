// Package entity defines the core business entities for the domain layer.
package entity

// PLSnapshot holds the rolled-up Profit & Loss figures for one period.
// All amounts are minor currency units. The derived fields always satisfy:
//
//	GrossProfit     = Revenue − CostOfSales
//	OperatingProfit = GrossProfit − SGA
//	OrdinaryProfit  = OperatingProfit + NonOperatingNet
//	NetProfit       = OrdinaryProfit + ExtraordinaryNet
type PLSnapshot struct {
	Revenue          int64
	CostOfSales      int64
	GrossProfit      int64
	SGA              int64
	OperatingProfit  int64
	NonOperatingNet  int64
	OrdinaryProfit   int64
	ExtraordinaryNet int64
	NetProfit        int64
}

// BSSnapshot holds the rolled-up Balance Sheet figures for one period.
// Equity includes the period's net profit injected into the retained
// earnings line; the underlying ledger does not store it separately.
type BSSnapshot struct {
	CurrentAssets             int64
	FixedAssets               int64
	TotalAssets               int64
	CurrentLiabilities        int64
	LongTermLiabilities       int64
	TotalLiabilities          int64
	Equity                    int64
	TotalLiabilitiesAndEquity int64
}

// CFSnapshot holds the rolled-up Cash Flow figures for one period.
// NetChangeInCash = OperatingCF + InvestingCF + FinancingCF by construction.
type CFSnapshot struct {
	OperatingCF     int64
	InvestingCF     int64
	FinancingCF     int64
	NetChangeInCash int64
}

// WarningCode classifies a non-fatal deficiency in a computed statement.
type WarningCode string

const (
	WarnUnknownCategory       WarningCode = "unknown_category"
	WarnStatementTypeMismatch WarningCode = "statement_type_mismatch"
	WarnSourceUnavailable     WarningCode = "source_unavailable"
	WarnBalanceSheetDelta     WarningCode = "balance_sheet_delta"
	WarnCashFlowMismatch      WarningCode = "cash_flow_mismatch"
)

// Warning is a non-fatal deficiency surfaced as metadata on a result,
// never as an error that blocks the view.
type Warning struct {
	Code    WarningCode
	Message string
	// Delta carries the amount of a reported imbalance, when applicable.
	Delta int64
}
