package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/timpalpant/alphablotto"
)

const (
	DefenderTableFile = "defenderpayoff.csv"
	AttackerTableFile = "attackerpayoff.csv"
)

// WriteTable writes one row of comma-separated values per row of table,
// each formatted with 2 decimal places.
func WriteTable(w io.Writer, table [][]float64) error {
	cw := csv.NewWriter(w)
	for _, row := range table {
		if err := cw.Write(formatRow(row)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadTable parses a table written by WriteTable.
func ReadTable(r io.Reader) ([][]float64, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}

	result := make([][]float64, len(records))
	for i, record := range records {
		result[i] = make([]float64, len(record))
		for j, field := range record {
			result[i][j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, column %d", i, j)
			}
		}
	}

	return result, nil
}

// WriteTables saves the defender and attacker payoff tables of results
// to the given directory.
func WriteTables(dir string, results *alphablotto.Results) error {
	tables := map[string][][]float64{
		DefenderTableFile: results.Defender,
		AttackerTableFile: results.Attacker,
	}

	for name, table := range tables {
		filename := filepath.Join(dir, name)
		if err := writeTableFile(filename, table); err != nil {
			return errors.Wrapf(err, "writing %v", filename)
		}
	}

	return nil
}

func writeTableFile(filename string, table [][]float64) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := WriteTable(f, table); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// FormatTable renders table with space-separated columns, one line per row.
func FormatTable(table [][]float64) string {
	lines := make([]string, len(table))
	for i, row := range table {
		lines[i] = strings.Join(formatRow(row), " ")
	}
	return strings.Join(lines, "\n")
}

func formatRow(row []float64) []string {
	result := make([]string, len(row))
	for i, v := range row {
		result[i] = strconv.FormatFloat(v, 'f', 2, 64)
	}
	return result
}
