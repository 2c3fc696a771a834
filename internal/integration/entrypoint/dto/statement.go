// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/application/usecase/statement"
	"github.com/bizsuite/backend/internal/domain/entity"
	"github.com/bizsuite/backend/internal/domain/taxonomy"
)

// CategoryTotalResponse represents one aggregated statement line.
type CategoryTotalResponse struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category,omitempty"`
	Label       string `json:"label,omitempty"`
	Amount      string `json:"amount"`
}

// WarningResponse represents a non-fatal deficiency on a statement.
type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Delta   string `json:"delta,omitempty"`
}

// PLResponse represents the Profit & Loss rollup in API responses.
type PLResponse struct {
	Revenue          string `json:"revenue"`
	CostOfSales      string `json:"cost_of_sales"`
	GrossProfit      string `json:"gross_profit"`
	SGA              string `json:"sga"`
	OperatingProfit  string `json:"operating_profit"`
	NonOperatingNet  string `json:"non_operating_net"`
	OrdinaryProfit   string `json:"ordinary_profit"`
	ExtraordinaryNet string `json:"extraordinary_net"`
	NetProfit        string `json:"net_profit"`
}

// BSResponse represents the Balance Sheet rollup in API responses.
type BSResponse struct {
	CurrentAssets             string `json:"current_assets"`
	FixedAssets               string `json:"fixed_assets"`
	TotalAssets               string `json:"total_assets"`
	CurrentLiabilities        string `json:"current_liabilities"`
	LongTermLiabilities       string `json:"long_term_liabilities"`
	TotalLiabilities          string `json:"total_liabilities"`
	Equity                    string `json:"equity"`
	TotalLiabilitiesAndEquity string `json:"total_liabilities_and_equity"`
}

// CFResponse represents the Cash Flow rollup in API responses.
type CFResponse struct {
	OperatingCF     string `json:"operating_cf"`
	InvestingCF     string `json:"investing_cf"`
	FinancingCF     string `json:"financing_cf"`
	NetChangeInCash string `json:"net_change_in_cash"`
}

// StatementResponse represents a computed statement in API responses.
type StatementResponse struct {
	StatementType  string                  `json:"statement_type"`
	StartDate      string                  `json:"start_date"`
	EndDate        string                  `json:"end_date"`
	BusinessID     *string                 `json:"business_id,omitempty"`
	CategoryTotals []CategoryTotalResponse `json:"category_totals"`
	PL             *PLResponse             `json:"pl,omitempty"`
	BS             *BSResponse             `json:"bs,omitempty"`
	CF             *CFResponse             `json:"cf,omitempty"`
	IsPartial      bool                    `json:"is_partial"`
	FailedSources  []string                `json:"failed_sources,omitempty"`
	Warnings       []WarningResponse       `json:"warnings,omitempty"`
}

// SummaryResponse represents the cross-source summary in API responses.
type SummaryResponse struct {
	StartDate             string `json:"start_date"`
	EndDate               string `json:"end_date"`
	PayrollTotal          string `json:"payroll_total"`
	AgencyRevenueTotal    string `json:"agency_revenue_total"`
	AgencyCommissionTotal string `json:"agency_commission_total"`
	PayrollCount          int    `json:"payroll_count"`
	AgencySalesCount      int    `json:"agency_sales_count"`
}

// formatMinorUnits renders an int64 minor-unit amount as a fixed
// two-decimal string. Display formatting is the only place amounts leave
// integer arithmetic.
func formatMinorUnits(v int64) string {
	return decimal.New(v, -2).StringFixed(2)
}

// ToStatementResponse converts an engine result to a StatementResponse DTO.
func ToStatementResponse(result *statement.Result) StatementResponse {
	response := StatementResponse{
		StatementType: string(result.StatementType),
		StartDate:     result.DateRange.Start.Format("2006-01-02"),
		EndDate:       result.DateRange.End.Format("2006-01-02"),
		IsPartial:     result.IsPartial,
	}

	if result.BusinessID != nil {
		id := result.BusinessID.String()
		response.BusinessID = &id
	}

	response.CategoryTotals = make([]CategoryTotalResponse, len(result.CategoryTotals))
	for i, total := range result.CategoryTotals {
		label := ""
		if cat, err := taxonomy.Lookup(total.Category); err == nil {
			label = cat.Label
		}
		response.CategoryTotals[i] = CategoryTotalResponse{
			Category:    total.Category,
			SubCategory: total.SubCategory,
			Label:       label,
			Amount:      formatMinorUnits(total.Total),
		}
	}

	for _, source := range result.FailedSources {
		response.FailedSources = append(response.FailedSources, string(source))
	}
	for _, warning := range result.Warnings {
		response.Warnings = append(response.Warnings, toWarningResponse(warning))
	}

	if result.PL != nil {
		response.PL = &PLResponse{
			Revenue:          formatMinorUnits(result.PL.Revenue),
			CostOfSales:      formatMinorUnits(result.PL.CostOfSales),
			GrossProfit:      formatMinorUnits(result.PL.GrossProfit),
			SGA:              formatMinorUnits(result.PL.SGA),
			OperatingProfit:  formatMinorUnits(result.PL.OperatingProfit),
			NonOperatingNet:  formatMinorUnits(result.PL.NonOperatingNet),
			OrdinaryProfit:   formatMinorUnits(result.PL.OrdinaryProfit),
			ExtraordinaryNet: formatMinorUnits(result.PL.ExtraordinaryNet),
			NetProfit:        formatMinorUnits(result.PL.NetProfit),
		}
	}
	if result.BS != nil {
		response.BS = &BSResponse{
			CurrentAssets:             formatMinorUnits(result.BS.CurrentAssets),
			FixedAssets:               formatMinorUnits(result.BS.FixedAssets),
			TotalAssets:               formatMinorUnits(result.BS.TotalAssets),
			CurrentLiabilities:        formatMinorUnits(result.BS.CurrentLiabilities),
			LongTermLiabilities:       formatMinorUnits(result.BS.LongTermLiabilities),
			TotalLiabilities:          formatMinorUnits(result.BS.TotalLiabilities),
			Equity:                    formatMinorUnits(result.BS.Equity),
			TotalLiabilitiesAndEquity: formatMinorUnits(result.BS.TotalLiabilitiesAndEquity),
		}
	}
	if result.CF != nil {
		response.CF = &CFResponse{
			OperatingCF:     formatMinorUnits(result.CF.OperatingCF),
			InvestingCF:     formatMinorUnits(result.CF.InvestingCF),
			FinancingCF:     formatMinorUnits(result.CF.FinancingCF),
			NetChangeInCash: formatMinorUnits(result.CF.NetChangeInCash),
		}
	}

	return response
}

// ToSummaryResponse converts a summary result to a SummaryResponse DTO.
func ToSummaryResponse(dateRange entity.DateRange, result *statement.SummaryResult) SummaryResponse {
	return SummaryResponse{
		StartDate:             dateRange.Start.Format("2006-01-02"),
		EndDate:               dateRange.End.Format("2006-01-02"),
		PayrollTotal:          formatMinorUnits(result.PayrollTotal),
		AgencyRevenueTotal:    formatMinorUnits(result.AgencyRevenueTotal),
		AgencyCommissionTotal: formatMinorUnits(result.AgencyCommissionTotal),
		PayrollCount:          result.PayrollCount,
		AgencySalesCount:      result.AgencySalesCount,
	}
}

func toWarningResponse(warning entity.Warning) WarningResponse {
	response := WarningResponse{
		Code:    string(warning.Code),
		Message: warning.Message,
	}
	if warning.Delta != 0 {
		response.Delta = formatMinorUnits(warning.Delta)
	}
	return response
}
