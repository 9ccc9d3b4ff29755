package api

import (
	"encoding/csv"
	"io"

	"github.com/healthtech/healthtech/pkg/types"
)

// writeCSV writes a header row and one row per record.
func writeCSV(w io.Writer, records []types.HealthRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.RecordColumns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Cells()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
