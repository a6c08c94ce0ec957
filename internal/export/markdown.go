package export

import (
	"bufio"
	"fmt"
	"io"
)

func writeMarkdown(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# WeatherWise Export")
	fmt.Fprintln(bw)
	for _, r := range rows {
		fmt.Fprintf(bw, "## Request #%d - %s (%.4f,%.4f)\n", r.ID, r.ResolvedName, r.Latitude, r.Longitude)
		fmt.Fprintf(bw, "- Entered: **%s**\n", r.LocationInput)
		fmt.Fprintf(bw, "- Range: **%s → %s**\n", r.DateFrom, r.DateTo)
		if len(r.Weather.MissingDates) > 0 {
			fmt.Fprintf(bw, "- Missing days: %d\n", len(r.Weather.MissingDates))
		}
		if r.Notes != "" {
			fmt.Fprintf(bw, "- Notes: %s\n", r.Notes)
		}
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "| Date | Tmin (°C) | Tmax (°C) | Precip (mm) | Code |")
		fmt.Fprintln(bw, "|---|---:|---:|---:|---:|")
		for _, d := range r.Weather.Daily {
			fmt.Fprintf(bw, "| %s | %s | %s | %s | %s |\n",
				d.Date, cell(d.TempMin), cell(d.TempMax), cell(d.Precipitation), codeCell(d.WeatherCode))
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
