package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"opsintel/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingHeader = errors.New("dataset has no header row")
	ErrMissingColumn = errors.New("dataset is missing a required column")
)

// misspelledColumns maps known header misspellings of the source export to their canonical name
var misspelledColumns = map[string]string{
	"quantitu_of_merchants": models.ColumnQuantityOfMerchants,
}

var requiredColumns = []string{
	models.ColumnDay,
	models.ColumnEntity,
	models.ColumnProduct,
	models.ColumnPaymentMethod,
	models.ColumnAmountTransacted,
	models.ColumnQuantityTransactions,
	models.ColumnQuantityOfMerchants,
}

// Load reads the dataset CSV at path
func Load(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	snapshot, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}

	slog.Info("Dataset loaded",
		"path", path,
		"records", snapshot.Len(),
		"skipped_rows", snapshot.SkippedRows(),
		"days", len(snapshot.days))

	return snapshot, nil
}

// Parse reads a dataset CSV with a header row. Rows that fail to parse are
// skipped and counted on the returned snapshot.
func Parse(r io.Reader) (*Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := CanonicalColumns(header)
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var (
		records []models.TransactionRecord
		skipped int
		line    = 1
	)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				slog.Debug("Skipping malformed row", "line", line, "error", err)
				skipped++
				continue
			}
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		record, err := parseRecord(row, columns)
		if err != nil {
			slog.Debug("Skipping invalid row", "line", line, "error", err)
			skipped++
			continue
		}
		records = append(records, record)
	}

	if skipped > 0 {
		slog.Warn("Dataset rows skipped", "skipped_rows", skipped, "loaded_rows", len(records))
	}

	return newSnapshot(records, skipped), nil
}

// CanonicalColumns maps canonical column names to their index in the header.
// Names are trimmed and lower-cased, and known misspellings are renamed.
func CanonicalColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if canonical, ok := misspelledColumns[name]; ok {
			name = canonical
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

func parseRecord(row []string, columns map[string]int) (models.TransactionRecord, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	day, err := ParseDay(field(models.ColumnDay))
	if err != nil {
		return models.TransactionRecord{}, fmt.Errorf("day %q: %w", field(models.ColumnDay), err)
	}

	amount, err := decimal.NewFromString(field(models.ColumnAmountTransacted))
	if err != nil {
		return models.TransactionRecord{}, fmt.Errorf("amount_transacted: %w", err)
	}

	transactions, err := parseCount(field(models.ColumnQuantityTransactions))
	if err != nil {
		return models.TransactionRecord{}, fmt.Errorf("quantity_transactions: %w", err)
	}

	merchants, err := parseCount(field(models.ColumnQuantityOfMerchants))
	if err != nil {
		return models.TransactionRecord{}, fmt.Errorf("quantity_of_merchants: %w", err)
	}

	installments := int64(1)
	if raw := field(models.ColumnInstallments); raw != "" {
		installments, err = parseCount(raw)
		if err != nil {
			return models.TransactionRecord{}, fmt.Errorf("installments: %w", err)
		}
	}

	record := models.TransactionRecord{
		Day:                  day,
		Entity:               field(models.ColumnEntity),
		Product:              field(models.ColumnProduct),
		PriceTier:            field(models.ColumnPriceTier),
		AnticipationMethod:   field(models.ColumnAnticipationMethod),
		NitroOrD0:            field(models.ColumnNitroOrD0),
		PaymentMethod:        field(models.ColumnPaymentMethod),
		Installments:         int(installments),
		AmountTransacted:     amount,
		QuantityTransactions: transactions,
		QuantityOfMerchants:  merchants,
	}

	if err := record.Validate(); err != nil {
		return models.TransactionRecord{}, err
	}

	return record, nil
}

// parseCount accepts integers and integral decimals such as "12.0"
func parseCount(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("%s is not a whole number", value)
	}
	return d.IntPart(), nil
}
