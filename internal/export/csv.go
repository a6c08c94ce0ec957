package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "created_at", "location_input", "resolved_name", "latitude", "longitude",
	"date_from", "date_to", "provider", "notes",
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.CreatedAt.Format(time.RFC3339),
			r.LocationInput,
			r.ResolvedName,
			formatFloat(r.Latitude),
			formatFloat(r.Longitude),
			r.DateFrom.String(),
			r.DateTo.String(),
			r.Provider,
			r.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
