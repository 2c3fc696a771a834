package statement

import (
	"testing"

	"github.com/bizsuite/backend/internal/domain/entity"
)

func plTotal(category string, amount int64) entity.CategoryTotal {
	return entity.CategoryTotal{StatementType: entity.StatementTypePL, Category: category, Total: amount}
}

func bsTotal(category string, amount int64) entity.CategoryTotal {
	return entity.CategoryTotal{StatementType: entity.StatementTypeBS, Category: category, Total: amount}
}

func cfTotal(category string, amount int64) entity.CategoryTotal {
	return entity.CategoryTotal{StatementType: entity.StatementTypeCF, Category: category, Total: amount}
}

func assertPLInvariants(t *testing.T, pl entity.PLSnapshot) {
	t.Helper()

	if pl.GrossProfit != pl.Revenue-pl.CostOfSales {
		t.Errorf("gross profit invariant violated: %d != %d - %d", pl.GrossProfit, pl.Revenue, pl.CostOfSales)
	}
	if pl.OperatingProfit != pl.GrossProfit-pl.SGA {
		t.Errorf("operating profit invariant violated: %d != %d - %d", pl.OperatingProfit, pl.GrossProfit, pl.SGA)
	}
	if pl.OrdinaryProfit != pl.OperatingProfit+pl.NonOperatingNet {
		t.Errorf("ordinary profit invariant violated: %d != %d + %d", pl.OrdinaryProfit, pl.OperatingProfit, pl.NonOperatingNet)
	}
	if pl.NetProfit != pl.OrdinaryProfit+pl.ExtraordinaryNet {
		t.Errorf("net profit invariant violated: %d != %d + %d", pl.NetProfit, pl.OrdinaryProfit, pl.ExtraordinaryNet)
	}
}

func TestBuildPL(t *testing.T) {
	t.Run("empty totals produce an all-zero snapshot", func(t *testing.T) {
		pl := BuildPL(nil)

		if pl != (entity.PLSnapshot{}) {
			t.Errorf("expected zero snapshot, got %+v", pl)
		}
		assertPLInvariants(t, pl)
	})

	t.Run("revenue, cost of sales and SG&A roll up", func(t *testing.T) {
		totals := []entity.CategoryTotal{
			plTotal("sales_revenue", 700_000),
			plTotal("agency_revenue", 300_000),
			plTotal("merchandise_cost", 400_000),
			plTotal("personnel_expense", 200_000),
			plTotal("agency_commission_expense", 100_000),
		}

		pl := BuildPL(totals)

		if pl.Revenue != 1_000_000 {
			t.Errorf("expected revenue 1000000, got %d", pl.Revenue)
		}
		if pl.GrossProfit != 600_000 {
			t.Errorf("expected gross profit 600000, got %d", pl.GrossProfit)
		}
		if pl.OperatingProfit != 300_000 {
			t.Errorf("expected operating profit 300000, got %d", pl.OperatingProfit)
		}
		assertPLInvariants(t, pl)
	})

	t.Run("non-operating and extraordinary lines are signed by flow", func(t *testing.T) {
		totals := []entity.CategoryTotal{
			plTotal("sales_revenue", 500_000),
			plTotal("interest_income", 10_000),
			plTotal("dividend_income", 5_000),
			plTotal("interest_expense", 8_000),
			plTotal("other_non_operating", 2_000),
			plTotal("extraordinary_gain", 20_000),
			plTotal("extraordinary_loss", 50_000),
		}

		pl := BuildPL(totals)

		if pl.NonOperatingNet != 5_000 {
			t.Errorf("expected non-operating net 5000, got %d", pl.NonOperatingNet)
		}
		if pl.ExtraordinaryNet != -30_000 {
			t.Errorf("expected extraordinary net -30000, got %d", pl.ExtraordinaryNet)
		}
		if pl.NetProfit != 475_000 {
			t.Errorf("expected net profit 475000, got %d", pl.NetProfit)
		}
		assertPLInvariants(t, pl)
	})

	t.Run("totals from other statements are ignored", func(t *testing.T) {
		totals := []entity.CategoryTotal{
			plTotal("sales_revenue", 100_000),
			bsTotal("cash", 999_999),
			cfTotal("depreciation", 999_999),
		}

		pl := BuildPL(totals)

		if pl.Revenue != 100_000 {
			t.Errorf("expected revenue 100000, got %d", pl.Revenue)
		}
	})
}

func TestBuildBS(t *testing.T) {
	t.Run("groups sum and net profit is injected into equity", func(t *testing.T) {
		totals := []entity.CategoryTotal{
			bsTotal("cash", 500_000),
			bsTotal("accounts_receivable", 200_000),
			bsTotal("equipment", 300_000),
			bsTotal("accounts_payable", 150_000),
			bsTotal("long_term_loans", 400_000),
			bsTotal("capital_stock", 100_000),
			bsTotal("retained_earnings", 50_000),
		}

		bs := BuildBS(totals, 300_000)

		if bs.CurrentAssets != 700_000 {
			t.Errorf("expected current assets 700000, got %d", bs.CurrentAssets)
		}
		if bs.FixedAssets != 300_000 {
			t.Errorf("expected fixed assets 300000, got %d", bs.FixedAssets)
		}
		if bs.TotalAssets != 1_000_000 {
			t.Errorf("expected total assets 1000000, got %d", bs.TotalAssets)
		}
		if bs.TotalLiabilities != 550_000 {
			t.Errorf("expected total liabilities 550000, got %d", bs.TotalLiabilities)
		}
		if bs.Equity != 450_000 {
			t.Errorf("expected equity 450000 (150000 base + 300000 net profit), got %d", bs.Equity)
		}
		if bs.TotalLiabilitiesAndEquity != 1_000_000 {
			t.Errorf("expected total liabilities and equity 1000000, got %d", bs.TotalLiabilitiesAndEquity)
		}
	})

	t.Run("empty totals keep only the injected net profit", func(t *testing.T) {
		bs := BuildBS(nil, 42_000)

		if bs.Equity != 42_000 {
			t.Errorf("expected equity 42000, got %d", bs.Equity)
		}
		if bs.TotalAssets != 0 {
			t.Errorf("expected total assets 0, got %d", bs.TotalAssets)
		}
	})
}

func TestBuildCF(t *testing.T) {
	t.Run("operating sign table is applied exactly", func(t *testing.T) {
		totals := []entity.CategoryTotal{
			cfTotal("depreciation", 30_000),
			cfTotal("ar_decrease", 10_000),
			cfTotal("inventory_decrease", 5_000),
			cfTotal("ap_increase", 15_000),
			cfTotal("ar_increase", 20_000),
			cfTotal("inventory_increase", 8_000),
			cfTotal("ap_decrease", 7_000),
			cfTotal("other_operating", 5_000),
		}

		cf := BuildCF(totals, 100_000)

		// 100000 + (30000+10000+5000+15000) - (20000+8000+7000+5000)
		if cf.OperatingCF != 120_000 {
			t.Errorf("expected operating CF 120000, got %d", cf.OperatingCF)
		}
	})

	t.Run("manual investing categories and dedicated investments are both counted", func(t *testing.T) {
		totals := []entity.CategoryTotal{
			cfTotal("purchase_fixed_assets", 200_000),
			cfTotal("investment_outlay", 50_000),
		}

		cf := BuildCF(totals, 0)

		if cf.InvestingCF != -250_000 {
			t.Errorf("expected investing CF -250000, got %d", cf.InvestingCF)
		}
	})

	t.Run("net change in cash is the sum of its components", func(t *testing.T) {
		totals := []entity.CategoryTotal{
			cfTotal("depreciation", 40_000),
			cfTotal("purchase_fixed_assets", 90_000),
			cfTotal("sale_securities", 25_000),
			cfTotal("loan_proceeds", 60_000),
			cfTotal("dividends_paid", 10_000),
		}

		cf := BuildCF(totals, 55_000)

		if cf.NetChangeInCash != cf.OperatingCF+cf.InvestingCF+cf.FinancingCF {
			t.Errorf("net change invariant violated: %d != %d + %d + %d",
				cf.NetChangeInCash, cf.OperatingCF, cf.InvestingCF, cf.FinancingCF)
		}
		if cf.OperatingCF != 95_000 {
			t.Errorf("expected operating CF 95000, got %d", cf.OperatingCF)
		}
		if cf.InvestingCF != -65_000 {
			t.Errorf("expected investing CF -65000, got %d", cf.InvestingCF)
		}
		if cf.FinancingCF != 50_000 {
			t.Errorf("expected financing CF 50000, got %d", cf.FinancingCF)
		}
	})

	t.Run("empty totals carry the net profit through operating CF", func(t *testing.T) {
		cf := BuildCF(nil, 12_345)

		if cf.OperatingCF != 12_345 {
			t.Errorf("expected operating CF 12345, got %d", cf.OperatingCF)
		}
		if cf.NetChangeInCash != 12_345 {
			t.Errorf("expected net change 12345, got %d", cf.NetChangeInCash)
		}
	})
}
