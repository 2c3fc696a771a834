package steps

import (
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/integration/persistence/model"
)

// tableRows converts a godog table into header-keyed maps, one per data row.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header row and at least one data row")
	}

	headers := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		headers[i] = cell.Value
	}

	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != len(headers) {
			return nil, fmt.Errorf("row has %d cells, header has %d", len(row.Cells), len(headers))
		}
		m := make(map[string]string, len(headers))
		for i, cell := range row.Cells {
			m[headers[i]] = cell.Value
		}
		rows = append(rows, m)
	}
	return rows, nil
}

func parseAmount(row map[string]string, column string) (decimal.Decimal, error) {
	value, ok := row[column]
	if !ok {
		return decimal.Zero, fmt.Errorf("missing column %q", column)
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q in column %q: %w", value, column, err)
	}
	return amount, nil
}

func parseDate(row map[string]string, column string) (time.Time, error) {
	value, ok := row[column]
	if !ok {
		return time.Time{}, fmt.Errorf("missing column %q", column)
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q in column %q: %w", value, column, err)
	}
	return date, nil
}

func (t *testContext) theFollowingBusinessRecordsExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := parseAmount(row, "amount")
		if err != nil {
			return err
		}
		date, err := parseDate(row, "date")
		if err != nil {
			return err
		}

		businessID := uuid.New()
		if id := row["business_id"]; id != "" {
			businessID, err = uuid.Parse(id)
			if err != nil {
				return fmt.Errorf("invalid business_id %q: %w", id, err)
			}
		}

		now := time.Now().UTC()
		record := &model.BusinessRecordModel{
			ID:          uuid.New(),
			BusinessID:  businessID,
			Type:        row["type"],
			Amount:      amount,
			Date:        date,
			Description: row["description"],
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := t.db.DbConn.Create(record).Error; err != nil {
			return fmt.Errorf("failed to seed business record: %w", err)
		}
	}
	return nil
}

func (t *testContext) theFollowingSalaryPaymentsExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := parseAmount(row, "amount")
		if err != nil {
			return err
		}
		paidDate, err := parseDate(row, "paid_date")
		if err != nil {
			return err
		}

		payment := &model.SalaryPaymentModel{
			ID:           uuid.New(),
			EmployeeName: row["employee"],
			Amount:       amount,
			PaidDate:     paidDate,
			CreatedAt:    time.Now().UTC(),
		}
		if err := t.db.DbConn.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to seed salary payment: %w", err)
		}
	}
	return nil
}

func (t *testContext) theFollowingAgencySalesExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		revenue, err := parseAmount(row, "revenue")
		if err != nil {
			return err
		}
		commission, err := parseAmount(row, "commission")
		if err != nil {
			return err
		}
		date, err := parseDate(row, "date")
		if err != nil {
			return err
		}

		sale := &model.AgencySaleModel{
			ID:         uuid.New(),
			AgencyName: row["agency"],
			Revenue:    revenue,
			Commission: commission,
			Date:       date,
			CreatedAt:  time.Now().UTC(),
		}
		if err := t.db.DbConn.Create(sale).Error; err != nil {
			return fmt.Errorf("failed to seed agency sale: %w", err)
		}
	}
	return nil
}

func (t *testContext) theFollowingInvestmentsExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := parseAmount(row, "amount")
		if err != nil {
			return err
		}
		date, err := parseDate(row, "date")
		if err != nil {
			return err
		}

		var businessID *uuid.UUID
		if id := row["business_id"]; id != "" {
			parsed, err := uuid.Parse(id)
			if err != nil {
				return fmt.Errorf("invalid business_id %q: %w", id, err)
			}
			businessID = &parsed
		}

		investment := &model.InvestmentModel{
			ID:          uuid.New(),
			BusinessID:  businessID,
			Amount:      amount,
			Category:    row["category"],
			Date:        date,
			Description: row["description"],
			CreatedAt:   time.Now().UTC(),
		}
		if err := t.db.DbConn.Create(investment).Error; err != nil {
			return fmt.Errorf("failed to seed investment: %w", err)
		}
	}
	return nil
}

func (t *testContext) theFollowingManualEntriesExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := parseAmount(row, "amount")
		if err != nil {
			return err
		}
		date, err := parseDate(row, "date")
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		entry := &model.ManualEntryModel{
			ID:            uuid.New(),
			StatementType: row["statement_type"],
			Category:      row["category"],
			SubCategory:   row["sub_category"],
			Amount:        amount,
			Date:          date,
			Description:   row["description"],
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := t.db.DbConn.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to seed manual entry: %w", err)
		}
		t.lastEntryID = entry.ID.String()
	}
	return nil
}
