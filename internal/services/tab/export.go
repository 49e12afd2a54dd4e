package tab

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	transactionRepo "github.com/barledger/bartab/internal/repositories/transaction"
)

// exportDateFormat is the timestamp layout used in CSV rows
const exportDateFormat = "2006-01-02 15:04:05"

// exportHeader is the CSV column set, one row per transaction
var exportHeader = []string{
	"Date",
	"Guest Name",
	"Drink ID",
	"Volume Served (oz)",
	"Mixer Cost",
	"Flat Cost",
	"Calculated Price",
	"Transaction ID",
}

// ExportTransactionsCSV renders all transactions as CSV, newest first
func (s *service) ExportTransactionsCSV(ctx context.Context, input *ExportTransactionsCSVInput) (*ExportTransactionsCSVOutput, error) {
	output, err := s.transactionRepo.ListTransactions(ctx, &transactionRepo.ListTransactionsInput{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, tx := range output.Transactions {
		row := []string{
			tx.Date.Format(exportDateFormat),
			tx.GuestName,
			tx.DrinkID,
			formatAmount(tx.VolumeServed),
			formatAmount(tx.MixerCost),
			formatAmount(tx.FlatCost),
			formatAmount(tx.CalculatedPrice),
			tx.ID,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return &ExportTransactionsCSVOutput{CSV: buf.Bytes()}, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
