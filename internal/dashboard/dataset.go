// Package dashboard turns an externally supplied tabular dataset into the
// summary metrics and chart inputs of the dashboard view. The dataset is
// independent of the session ledger: it is uploaded historical data, not the
// live entries recorded during the session.
package dashboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one transaction row of an uploaded dataset.
type Row struct {
	Type     string
	Amount   decimal.Decimal
	Category string
	Mode     string
}

// Dataset is the parsed, read-only tabular structure behind the dashboard.
type Dataset struct {
	Rows []Row
}

// DataFormatError reports an uploaded file that cannot be used: a required
// column is missing or an amount is not numeric. The underlying cause is
// preserved for display.
type DataFormatError struct {
	Cause error
}

func (e *DataFormatError) Error() string {
	return "dashboard dataset: " + e.Cause.Error()
}

func (e *DataFormatError) Unwrap() error {
	return e.Cause
}

func formatErr(format string, args ...any) error {
	return &DataFormatError{Cause: fmt.Errorf(format, args...)}
}

// requiredColumns are the headers a dataset must carry, in any order.
var requiredColumns = []string{"Type", "Amount", "Category", "Mode"}

// ReadCSV parses a dataset from CSV. The first record is the header; columns
// may appear in any order and extra columns are ignored. Any structural
// problem is reported as a *DataFormatError so the caller can show the cause
// and render no charts.
func ReadCSV(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Dataset{}, formatErr("read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return Dataset{}, formatErr("missing required column %q", name)
		}
	}

	var ds Dataset
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return Dataset{}, formatErr("read row %d: %w", line, err)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(record[cols["Amount"]]))
		if err != nil {
			return Dataset{}, formatErr("row %d: non-numeric amount %q", line, record[cols["Amount"]])
		}

		ds.Rows = append(ds.Rows, Row{
			Type:     strings.TrimSpace(record[cols["Type"]]),
			Amount:   amount,
			Category: strings.TrimSpace(record[cols["Category"]]),
			Mode:     strings.TrimSpace(record[cols["Mode"]]),
		})
	}
	return ds, nil
}
