package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/domain/entities"
)

// Loader handles loading catalog parts from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

var partsHeader = []string{
	"bike", "stage", "name", "cost", "hp_gain", "weight_reduction", "installation_time", "manufacturer",
}

// LoadParts loads catalog parts from a CSV file. Rows keep file order, which
// becomes catalog order. The bike column may list several bikes separated by '|'.
func (l *Loader) LoadParts(filename string) ([]entities.Part, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read parts CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("parts CSV must have header and at least one data row")
	}

	header := records[0]
	if !validateHeader(header, partsHeader) {
		return nil, fmt.Errorf("parts CSV header mismatch. Expected: %v, Got: %v", partsHeader, header)
	}

	parts := make([]entities.Part, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(partsHeader) {
			return nil, fmt.Errorf("parts CSV row %d: expected %d columns, got %d", i+2, len(partsHeader), len(record))
		}

		part, err := parsePart(record)
		if err != nil {
			return nil, fmt.Errorf("parts CSV row %d: %w", i+2, err)
		}

		parts = append(parts, *part)
	}

	return parts, nil
}

func parsePart(record []string) (*entities.Part, error) {
	var compatibility []entities.BikeName
	for _, bike := range strings.Split(record[0], "|") {
		if bike = strings.TrimSpace(bike); bike != "" {
			compatibility = append(compatibility, entities.BikeName(bike))
		}
	}

	stage, err := strconv.Atoi(record[1])
	if err != nil {
		return nil, fmt.Errorf("invalid stage: %s", record[1])
	}

	cost, err := decimal.NewFromString(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid cost: %s", record[3])
	}

	hpGain, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid hp_gain: %s", record[4])
	}

	weightReduction, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid weight_reduction: %s", record[5])
	}

	installationTime, err := strconv.ParseFloat(record[6], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid installation_time: %s", record[6])
	}

	return entities.NewPart(
		record[2],
		cost,
		hpGain,
		weightReduction,
		entities.Stage(stage),
		installationTime,
		compatibility,
		record[7],
	)
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.ToLower(actual[i])) != col {
			return false
		}
	}
	return true
}
