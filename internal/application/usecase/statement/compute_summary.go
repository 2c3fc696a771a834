// Package statement implements the financial statement engine.
package statement

import (
	"context"
	"fmt"

	"github.com/bizsuite/backend/internal/application/adapter"
	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
)

// ComputeSummaryInput represents the input for the back-office summary.
type ComputeSummaryInput struct {
	DateRange entity.DateRange
}

// SummaryResult carries the payroll and agency headline figures for a
// period. Amounts are minor currency units.
type SummaryResult struct {
	PayrollTotal          int64
	AgencyRevenueTotal    int64
	AgencyCommissionTotal int64
	PayrollCount          int
	AgencySalesCount      int
}

// ComputeSummaryUseCase produces the payroll/agency headline numbers shown
// on the back-office overview.
type ComputeSummaryUseCase struct {
	payroll adapter.PayrollSource
	agency  adapter.AgencyCommissionSource
}

// NewComputeSummaryUseCase creates a new ComputeSummaryUseCase instance.
func NewComputeSummaryUseCase(
	payroll adapter.PayrollSource,
	agency adapter.AgencyCommissionSource,
) *ComputeSummaryUseCase {
	return &ComputeSummaryUseCase{
		payroll: payroll,
		agency:  agency,
	}
}

// Execute fetches payroll and agency records concurrently and sums them.
func (uc *ComputeSummaryUseCase) Execute(
	ctx context.Context,
	input ComputeSummaryInput,
) (*SummaryResult, error) {
	if err := validateDateRange(input.DateRange); err != nil {
		return nil, err
	}

	var (
		salaries   []entity.SalaryPayment
		sales      []entity.AgencySale
		payrollErr error
		agencyErr  error
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		salaries, payrollErr = uc.payroll.FetchSalaries(ctx, input.DateRange)
	}()
	sales, agencyErr = uc.agency.FetchAgencySales(ctx, input.DateRange)
	<-done

	if payrollErr != nil {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeSourceUnavailable,
			"payroll source unavailable",
			fmt.Errorf("%w: %w", domainerror.ErrSourceUnavailable, payrollErr),
		)
	}
	if agencyErr != nil {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeSourceUnavailable,
			"agency commission source unavailable",
			fmt.Errorf("%w: %w", domainerror.ErrSourceUnavailable, agencyErr),
		)
	}

	result := &SummaryResult{
		PayrollCount:     len(salaries),
		AgencySalesCount: len(sales),
	}
	for _, p := range salaries {
		result.PayrollTotal += toMinorUnits(p.Amount)
	}
	for _, s := range sales {
		result.AgencyRevenueTotal += toMinorUnits(s.Revenue)
		result.AgencyCommissionTotal += toMinorUnits(s.Commission)
	}
	return result, nil
}
