package lcoh

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCurveCSV writes an LCOH-vs-electricity-price sweep as CSV.
func WriteCurveCSV(path string, points []CurvePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"electricity_cost_per_mwh",
		"lcoh_per_kg",
		"lcoh_after_credit_per_kg",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			fmtFloat(p.ElectricityCostPerMWh),
			fmtFloat(p.LCOHPerKg),
			fmtFloat(p.LCOHAfterCreditPerKg),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteMatrixCSV writes one row per lifetime year: the year index
// followed by that year's LCOH samples.
func WriteMatrixCSV(path string, res *MatrixResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if len(res.Rows) == 0 {
		return w.Error()
	}
	header := make([]string, 0, len(res.Rows[0])+1)
	header = append(header, "year")
	for i := range res.Rows[0] {
		header = append(header, fmt.Sprintf("sample_%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for y, samples := range res.Rows {
		row := make([]string, 0, len(samples)+1)
		row = append(row, strconv.Itoa(y))
		for _, v := range samples {
			row = append(row, fmtFloat(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
