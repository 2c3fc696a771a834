// Package taxonomy holds the closed category reference table for the
// financial statement engine. Every category decision — statement
// membership, rollup group, sign — routes through this table; no caller
// keeps its own category lists.
package taxonomy

import (
	"sort"

	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
)

// Well-known category codes referenced by the source adapters. The full
// set lives in the table below; these are the ones adapters assign
// themselves rather than receiving from user input.
const (
	CodeSalesRevenue            = "sales_revenue"
	CodeAgencyRevenue           = "agency_revenue"
	CodeBusinessExpense         = "business_expense"
	CodePersonnelExpense        = "personnel_expense"
	CodeAgencyCommissionExpense = "agency_commission_expense"
	CodeRetainedEarnings        = "retained_earnings"
	CodeInvestmentOutlay        = "investment_outlay"
)

// table is the single source of truth for category metadata. It is a
// closed, versioned set: unknown codes are rejected, never guessed.
var table = map[string]entity.Category{
	// PL — revenue
	CodeSalesRevenue:  {Code: CodeSalesRevenue, StatementType: entity.StatementTypePL, Group: entity.GroupRevenue, Flow: entity.FlowInflow, Label: "Sales revenue"},
	CodeAgencyRevenue: {Code: CodeAgencyRevenue, StatementType: entity.StatementTypePL, Group: entity.GroupRevenue, Flow: entity.FlowInflow, Label: "Agency revenue"},
	"other_revenue":   {Code: "other_revenue", StatementType: entity.StatementTypePL, Group: entity.GroupRevenue, Flow: entity.FlowInflow, Label: "Other revenue"},

	// PL — cost of sales
	"merchandise_cost":    {Code: "merchandise_cost", StatementType: entity.StatementTypePL, Group: entity.GroupCostOfSales, Flow: entity.FlowOutflow, Label: "Merchandise cost"},
	"outsourcing_cost":    {Code: "outsourcing_cost", StatementType: entity.StatementTypePL, Group: entity.GroupCostOfSales, Flow: entity.FlowOutflow, Label: "Outsourcing cost"},
	"other_cost_of_sales": {Code: "other_cost_of_sales", StatementType: entity.StatementTypePL, Group: entity.GroupCostOfSales, Flow: entity.FlowOutflow, Label: "Other cost of sales"},

	// PL — selling, general and administrative
	CodePersonnelExpense:        {Code: CodePersonnelExpense, StatementType: entity.StatementTypePL, Group: entity.GroupSGAndA, Flow: entity.FlowOutflow, Label: "Personnel expense"},
	CodeAgencyCommissionExpense: {Code: CodeAgencyCommissionExpense, StatementType: entity.StatementTypePL, Group: entity.GroupSGAndA, Flow: entity.FlowOutflow, Label: "Agency commission expense"},
	CodeBusinessExpense:         {Code: CodeBusinessExpense, StatementType: entity.StatementTypePL, Group: entity.GroupSGAndA, Flow: entity.FlowOutflow, Label: "Business expense"},
	"rent_expense":              {Code: "rent_expense", StatementType: entity.StatementTypePL, Group: entity.GroupSGAndA, Flow: entity.FlowOutflow, Label: "Rent expense"},
	"advertising_expense":       {Code: "advertising_expense", StatementType: entity.StatementTypePL, Group: entity.GroupSGAndA, Flow: entity.FlowOutflow, Label: "Advertising expense"},
	"depreciation_expense":      {Code: "depreciation_expense", StatementType: entity.StatementTypePL, Group: entity.GroupSGAndA, Flow: entity.FlowOutflow, Label: "Depreciation expense"},
	"other_sga":                 {Code: "other_sga", StatementType: entity.StatementTypePL, Group: entity.GroupSGAndA, Flow: entity.FlowOutflow, Label: "Other SG&A"},

	// PL — non-operating
	"interest_income":     {Code: "interest_income", StatementType: entity.StatementTypePL, Group: entity.GroupNonOperating, Flow: entity.FlowInflow, Label: "Interest income"},
	"dividend_income":     {Code: "dividend_income", StatementType: entity.StatementTypePL, Group: entity.GroupNonOperating, Flow: entity.FlowInflow, Label: "Dividend income"},
	"interest_expense":    {Code: "interest_expense", StatementType: entity.StatementTypePL, Group: entity.GroupNonOperating, Flow: entity.FlowOutflow, Label: "Interest expense"},
	"other_non_operating": {Code: "other_non_operating", StatementType: entity.StatementTypePL, Group: entity.GroupNonOperating, Flow: entity.FlowOutflow, Label: "Other non-operating expense"},

	// PL — extraordinary
	"extraordinary_gain": {Code: "extraordinary_gain", StatementType: entity.StatementTypePL, Group: entity.GroupExtraordinary, Flow: entity.FlowInflow, Label: "Extraordinary gain"},
	"extraordinary_loss": {Code: "extraordinary_loss", StatementType: entity.StatementTypePL, Group: entity.GroupExtraordinary, Flow: entity.FlowOutflow, Label: "Extraordinary loss"},

	// BS — current assets
	"cash":                 {Code: "cash", StatementType: entity.StatementTypeBS, Group: entity.GroupCurrentAssets, Flow: entity.FlowInflow, Label: "Cash and deposits"},
	"accounts_receivable":  {Code: "accounts_receivable", StatementType: entity.StatementTypeBS, Group: entity.GroupCurrentAssets, Flow: entity.FlowInflow, Label: "Accounts receivable"},
	"inventory":            {Code: "inventory", StatementType: entity.StatementTypeBS, Group: entity.GroupCurrentAssets, Flow: entity.FlowInflow, Label: "Inventory"},
	"other_current_assets": {Code: "other_current_assets", StatementType: entity.StatementTypeBS, Group: entity.GroupCurrentAssets, Flow: entity.FlowInflow, Label: "Other current assets"},

	// BS — fixed assets
	"buildings":          {Code: "buildings", StatementType: entity.StatementTypeBS, Group: entity.GroupFixedAssets, Flow: entity.FlowInflow, Label: "Buildings"},
	"equipment":          {Code: "equipment", StatementType: entity.StatementTypeBS, Group: entity.GroupFixedAssets, Flow: entity.FlowInflow, Label: "Equipment"},
	"land":               {Code: "land", StatementType: entity.StatementTypeBS, Group: entity.GroupFixedAssets, Flow: entity.FlowInflow, Label: "Land"},
	"other_fixed_assets": {Code: "other_fixed_assets", StatementType: entity.StatementTypeBS, Group: entity.GroupFixedAssets, Flow: entity.FlowInflow, Label: "Other fixed assets"},

	// BS — current liabilities
	"accounts_payable": {Code: "accounts_payable", StatementType: entity.StatementTypeBS, Group: entity.GroupCurrentLiabilities, Flow: entity.FlowInflow, Label: "Accounts payable"},
	"short_term_loans": {Code: "short_term_loans", StatementType: entity.StatementTypeBS, Group: entity.GroupCurrentLiabilities, Flow: entity.FlowInflow, Label: "Short-term loans"},
	"accrued_expenses": {Code: "accrued_expenses", StatementType: entity.StatementTypeBS, Group: entity.GroupCurrentLiabilities, Flow: entity.FlowInflow, Label: "Accrued expenses"},

	// BS — long-term liabilities
	"long_term_loans": {Code: "long_term_loans", StatementType: entity.StatementTypeBS, Group: entity.GroupLongTermLiabilities, Flow: entity.FlowInflow, Label: "Long-term loans"},
	"bonds_payable":   {Code: "bonds_payable", StatementType: entity.StatementTypeBS, Group: entity.GroupLongTermLiabilities, Flow: entity.FlowInflow, Label: "Bonds payable"},

	// BS — equity
	"capital_stock":        {Code: "capital_stock", StatementType: entity.StatementTypeBS, Group: entity.GroupEquity, Flow: entity.FlowInflow, Label: "Capital stock"},
	CodeRetainedEarnings:   {Code: CodeRetainedEarnings, StatementType: entity.StatementTypeBS, Group: entity.GroupEquity, Flow: entity.FlowInflow, Label: "Retained earnings"},

	// CF — operating. The inflow/outflow tags below are the exhaustive
	// sign table for operating cash flow; there is no generic rule.
	"depreciation":       {Code: "depreciation", StatementType: entity.StatementTypeCF, Group: entity.GroupOperating, Flow: entity.FlowInflow, Label: "Depreciation add-back"},
	"ar_decrease":        {Code: "ar_decrease", StatementType: entity.StatementTypeCF, Group: entity.GroupOperating, Flow: entity.FlowInflow, Label: "Decrease in receivables"},
	"inventory_decrease": {Code: "inventory_decrease", StatementType: entity.StatementTypeCF, Group: entity.GroupOperating, Flow: entity.FlowInflow, Label: "Decrease in inventory"},
	"ap_increase":        {Code: "ap_increase", StatementType: entity.StatementTypeCF, Group: entity.GroupOperating, Flow: entity.FlowInflow, Label: "Increase in payables"},
	"ar_increase":        {Code: "ar_increase", StatementType: entity.StatementTypeCF, Group: entity.GroupOperating, Flow: entity.FlowOutflow, Label: "Increase in receivables"},
	"inventory_increase": {Code: "inventory_increase", StatementType: entity.StatementTypeCF, Group: entity.GroupOperating, Flow: entity.FlowOutflow, Label: "Increase in inventory"},
	"ap_decrease":        {Code: "ap_decrease", StatementType: entity.StatementTypeCF, Group: entity.GroupOperating, Flow: entity.FlowOutflow, Label: "Decrease in payables"},
	"other_operating":    {Code: "other_operating", StatementType: entity.StatementTypeCF, Group: entity.GroupOperating, Flow: entity.FlowOutflow, Label: "Other operating outflow"},

	// CF — investing. investment_outlay is reserved for dedicated
	// investment records; keeping it as its own code lets both the manual
	// investing categories and the investment ledger count without overlap.
	"sale_fixed_assets":     {Code: "sale_fixed_assets", StatementType: entity.StatementTypeCF, Group: entity.GroupInvesting, Flow: entity.FlowInflow, Label: "Sale of fixed assets"},
	"sale_securities":       {Code: "sale_securities", StatementType: entity.StatementTypeCF, Group: entity.GroupInvesting, Flow: entity.FlowInflow, Label: "Sale of securities"},
	"loans_collected":       {Code: "loans_collected", StatementType: entity.StatementTypeCF, Group: entity.GroupInvesting, Flow: entity.FlowInflow, Label: "Collection of loans"},
	"purchase_fixed_assets": {Code: "purchase_fixed_assets", StatementType: entity.StatementTypeCF, Group: entity.GroupInvesting, Flow: entity.FlowOutflow, Label: "Purchase of fixed assets"},
	"purchase_securities":   {Code: "purchase_securities", StatementType: entity.StatementTypeCF, Group: entity.GroupInvesting, Flow: entity.FlowOutflow, Label: "Purchase of securities"},
	"loans_made":            {Code: "loans_made", StatementType: entity.StatementTypeCF, Group: entity.GroupInvesting, Flow: entity.FlowOutflow, Label: "Loans made"},
	"other_investing":       {Code: "other_investing", StatementType: entity.StatementTypeCF, Group: entity.GroupInvesting, Flow: entity.FlowOutflow, Label: "Other investing outflow"},
	CodeInvestmentOutlay:    {Code: CodeInvestmentOutlay, StatementType: entity.StatementTypeCF, Group: entity.GroupInvesting, Flow: entity.FlowOutflow, Label: "Capital investment"},

	// CF — financing
	"loan_proceeds":  {Code: "loan_proceeds", StatementType: entity.StatementTypeCF, Group: entity.GroupFinancing, Flow: entity.FlowInflow, Label: "Loan proceeds"},
	"stock_issuance": {Code: "stock_issuance", StatementType: entity.StatementTypeCF, Group: entity.GroupFinancing, Flow: entity.FlowInflow, Label: "Stock issuance"},
	"loan_repayment": {Code: "loan_repayment", StatementType: entity.StatementTypeCF, Group: entity.GroupFinancing, Flow: entity.FlowOutflow, Label: "Loan repayment"},
	"dividends_paid": {Code: "dividends_paid", StatementType: entity.StatementTypeCF, Group: entity.GroupFinancing, Flow: entity.FlowOutflow, Label: "Dividends paid"},
}

// Lookup resolves a category code against the taxonomy. Unknown codes
// return ErrUnknownCategory wrapped in a coded statement error.
func Lookup(code string) (entity.Category, error) {
	cat, ok := table[code]
	if !ok {
		return entity.Category{}, domainerror.NewStatementError(
			domainerror.ErrCodeUnknownCategory,
			"unknown category code: "+code,
			domainerror.ErrUnknownCategory,
		)
	}
	return cat, nil
}

// Contains reports whether code is part of the taxonomy.
func Contains(code string) bool {
	_, ok := table[code]
	return ok
}

// GroupCodes returns the category codes belonging to a statement group,
// sorted for deterministic iteration.
func GroupCodes(statementType entity.StatementType, group entity.CategoryGroup) []string {
	var codes []string
	for code, cat := range table {
		if cat.StatementType == statementType && cat.Group == group {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Codes returns every category code for a statement type, sorted.
func Codes(statementType entity.StatementType) []string {
	var codes []string
	for code, cat := range table {
		if cat.StatementType == statementType {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// All returns a copy of the full taxonomy, sorted by statement type then
// code, for listing endpoints.
func All() []entity.Category {
	all := make([]entity.Category, 0, len(table))
	for _, cat := range table {
		all = append(all, cat)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].StatementType != all[j].StatementType {
			return all[i].StatementType < all[j].StatementType
		}
		return all[i].Code < all[j].Code
	})
	return all
}
