// Package common provides the shared CSV helpers used by the export path.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/Tresor26/MOMO-Dashboard/internal/fileutils"
	"github.com/Tresor26/MOMO-Dashboard/internal/models"
)

var log = logrus.New()

// Delimiter is the CSV output delimiter. Defaults to a comma and can be
// overridden through the CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter changes the delimiter used for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// nullableAmount is a CSV cell holding an optional amount. An empty cell
// means the value was absent, which keeps "no balance" distinct from a
// balance of zero across a write/read round trip.
type nullableAmount struct {
	value *float64
}

// MarshalCSV renders the amount, or an empty cell when absent.
func (n nullableAmount) MarshalCSV() (string, error) {
	if n.value == nil {
		return "", nil
	}
	return strconv.FormatFloat(*n.value, 'f', -1, 64), nil
}

// UnmarshalCSV parses the cell, mapping an empty cell back to absent.
func (n *nullableAmount) UnmarshalCSV(cell string) error {
	if cell == "" {
		n.value = nil
		return nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return fmt.Errorf("invalid amount cell %q: %w", cell, err)
	}
	n.value = &f
	return nil
}

// csvTransaction is the CSV row shape for a stored transaction. It exists
// so the optional Balance/Fee columns use nullableAmount cells; the
// in-memory model keeps plain pointers.
type csvTransaction struct {
	Category    string         `csv:"Category"`
	Amount      float64        `csv:"Amount"`
	Sender      string         `csv:"Sender"`
	Receiver    string         `csv:"Receiver"`
	Date        string         `csv:"Date"`
	Description string         `csv:"Description"`
	RawBody     string         `csv:"RawBody"`
	Balance     nullableAmount `csv:"Balance"`
	Fee         nullableAmount `csv:"Fee"`
}

func toCSVRow(tx models.StoredTransaction) csvTransaction {
	return csvTransaction{
		Category:    tx.Category,
		Amount:      tx.Amount,
		Sender:      tx.Sender,
		Receiver:    tx.Receiver,
		Date:        tx.Date,
		Description: tx.Description,
		RawBody:     tx.RawBody,
		Balance:     nullableAmount{value: copyAmount(tx.Balance)},
		Fee:         nullableAmount{value: copyAmount(tx.Fee)},
	}
}

func fromCSVRow(row csvTransaction) models.StoredTransaction {
	return models.StoredTransaction{
		Category:    row.Category,
		Amount:      row.Amount,
		Sender:      row.Sender,
		Receiver:    row.Receiver,
		Date:        row.Date,
		Description: row.Description,
		RawBody:     row.RawBody,
		Balance:     copyAmount(row.Balance.value),
		Fee:         copyAmount(row.Fee.value),
	}
}

func copyAmount(value *float64) *float64 {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

// WriteTransactionsToCSV writes stored transactions to a CSV file, creating
// the parent directory when needed.
func WriteTransactionsToCSV(transactions []models.StoredTransaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]csvTransaction, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, toCSVRow(tx))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Successfully wrote transactions to CSV file")

	return nil
}

// ReadTransactionsFromCSV reads a previously exported CSV file back into
// stored transactions.
func ReadTransactionsFromCSV(csvFile string) ([]models.StoredTransaction, error) {
	log.WithField("file", csvFile).Info("Reading CSV file")

	file, err := os.Open(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []csvTransaction
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	transactions := make([]models.StoredTransaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, fromCSVRow(row))
	}

	log.WithField("count", len(transactions)).Info("Successfully read CSV data")
	return transactions, nil
}
