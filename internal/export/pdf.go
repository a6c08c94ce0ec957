package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin   = 72.0
	pdfRowH     = 14.0
	pdfDateColW = 110.0
	pdfNumColW  = 90.0
)

func writePDF(w io.Writer, rows []Row) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle("WeatherWise Export", true)
	// Core fonts are cp1252; the translator keeps "°" and accented names intact.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if len(rows) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 20, "WeatherWise Export", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, pdfRowH, "No weather requests stored.", "", 1, "L", false, 0, "")
	}

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(pdfDateColW, pdfRowH, "Date", "B", 0, "L", false, 0, "")
		for _, h := range []string{"Tmin (°C)", "Tmax (°C)", "Precip (mm)", "Code"} {
			pdf.CellFormat(pdfNumColW, pdfRowH, tr(h), "B", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}

	for _, r := range rows {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 20, fmt.Sprintf("WeatherWise Export - Request #%d", r.ID), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, pdfRowH, tr(fmt.Sprintf("%s (%.4f,%.4f)", r.ResolvedName, r.Latitude, r.Longitude)), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, pdfRowH, tr("Entered: "+r.LocationInput), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, pdfRowH, fmt.Sprintf("Range: %s to %s", r.DateFrom, r.DateTo), "", 1, "L", false, 0, "")
		if r.Notes != "" {
			pdf.MultiCell(0, pdfRowH, tr("Notes: "+r.Notes), "", "L", false)
		}
		pdf.Ln(8)

		header()
		for _, d := range r.Weather.Daily {
			if pdf.GetY()+pdfRowH > 792-pdfMargin {
				pdf.AddPage()
				header()
			}
			pdf.CellFormat(pdfDateColW, pdfRowH, d.Date.String(), "", 0, "L", false, 0, "")
			pdf.CellFormat(pdfNumColW, pdfRowH, cell(d.TempMin), "", 0, "R", false, 0, "")
			pdf.CellFormat(pdfNumColW, pdfRowH, cell(d.TempMax), "", 0, "R", false, 0, "")
			pdf.CellFormat(pdfNumColW, pdfRowH, cell(d.Precipitation), "", 0, "R", false, 0, "")
			pdf.CellFormat(pdfNumColW, pdfRowH, codeCell(d.WeatherCode), "", 1, "R", false, 0, "")
		}
	}

	return pdf.Output(w)
}
