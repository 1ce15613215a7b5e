// Package export serializes a week of route records into an xlsx
// workbook, grouped by working day.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"rutakm/internal/routelog"
	"rutakm/internal/week"
)

// SheetName is the single sheet holding the weekly log.
const SheetName = "Log_Rutas"

const (
	filenamePrefix = "SantiSystems_RutaKM"
	noIncidence    = "S/N"
	noRoutes       = "(Sin rutas)"
)

var header = []interface{}{"DÍA", "INCIDENCIA", "ORIGEN", "DESTINO", "KM"}

// Filename returns the export file name for a week key.
func Filename(weekKey string) string {
	return fmt.Sprintf("%s_%s.xlsx", filenamePrefix, weekKey)
}

// Build renders the given records as the weekly workbook: one section per
// working day in fixed order, each with a header row, then the day's
// records (or a single placeholder row when the day is empty), then a
// blank separator row.
func Build(records []routelog.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	row := 1
	if err := f.SetSheetRow(SheetName, cell(row), &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	row++

	for _, day := range week.WorkingDays {
		section := []interface{}{fmt.Sprintf("--- %s ---", strings.ToUpper(day)), "", "", "", ""}
		if err := f.SetSheetRow(SheetName, cell(row), &section); err != nil {
			return nil, fmt.Errorf("failed to write day header: %w", err)
		}
		row++

		wrote := false
		for _, r := range records {
			if r.Day != day {
				continue
			}
			incidence := r.Incidence
			if incidence == "" {
				incidence = noIncidence
			}
			cells := []interface{}{r.Date, incidence, r.Origin, r.Destination, r.Distance}
			if err := f.SetSheetRow(SheetName, cell(row), &cells); err != nil {
				return nil, fmt.Errorf("failed to write route row: %w", err)
			}
			row++
			wrote = true
		}

		if !wrote {
			placeholder := []interface{}{noRoutes, "-", "-", "-", "-"}
			if err := f.SetSheetRow(SheetName, cell(row), &placeholder); err != nil {
				return nil, fmt.Errorf("failed to write placeholder row: %w", err)
			}
			row++
		}

		// blank separator row between day sections
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(row int) string {
	return fmt.Sprintf("A%d", row)
}
