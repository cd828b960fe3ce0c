package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/fdg312/fit-hub-client/internal/backend"
	"github.com/fdg312/fit-hub-client/internal/bodymetrics"
)

// Report formats.
const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// Source provides the per-date aggregate series.
type Source interface {
	Analytics(ctx context.Context) ([]backend.AnalyticsPoint, error)
}

// Reporter exports the analytics series as a file. The original client
// rendered these series as charts; here they leave as a report instead.
type Reporter struct {
	source Source
	outDir string
}

// NewReporter creates a reporter writing into outDir.
func NewReporter(source Source, outDir string) *Reporter {
	return &Reporter{
		source: source,
		outDir: outDir,
	}
}

// Fetch returns the analytics series from the store.
func (r *Reporter) Fetch(ctx context.Context) ([]backend.AnalyticsPoint, error) {
	points, err := r.source.Analytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analytics: %w", err)
	}
	return points, nil
}

// WriteReport fetches the series and writes one report file, returning
// its path.
func (r *Reporter) WriteReport(ctx context.Context, format string) (string, error) {
	points, err := r.Fetch(ctx)
	if err != nil {
		return "", err
	}

	var data []byte
	switch format {
	case FormatPDF:
		data, err = GeneratePDF(points)
	case FormatCSV:
		data, err = GenerateCSV(points)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("analytics-%s.%s", time.Now().Format("2006-01-02"), format)
	path := filepath.Join(r.outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateCSV renders the series as CSV.
func GenerateCSV(points []backend.AnalyticsPoint) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "weight", "calories", "protein", "carbs", "fat", "sleep_minutes"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, p := range points {
		weight := ""
		if p.Weight > 0 {
			weight = fmt.Sprintf("%.1f", p.Weight)
		}
		row := []string{
			p.Date,
			weight,
			strconv.Itoa(p.Calories),
			strconv.Itoa(p.Protein),
			strconv.Itoa(p.Carbs),
			strconv.Itoa(p.Fat),
			strconv.Itoa(bodymetrics.SleepMinutes(p.BedTime, p.WakeTime)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GeneratePDF renders the series as a one-table PDF.
func GeneratePDF(points []backend.AnalyticsPoint) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Daily Tracking Analytics")
	pdf.Ln(14)

	colWidths := []float64{26, 22, 24, 22, 22, 22, 24}
	headers := []string{"Date", "Weight", "Calories", "Protein", "Carbs", "Fat", "Sleep min"}

	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, p := range points {
		weight := "-"
		if p.Weight > 0 {
			weight = fmt.Sprintf("%.1f", p.Weight)
		}
		cells := []string{
			p.Date,
			weight,
			strconv.Itoa(p.Calories),
			strconv.Itoa(p.Protein),
			strconv.Itoa(p.Carbs),
			strconv.Itoa(p.Fat),
			strconv.Itoa(bodymetrics.SleepMinutes(p.BedTime, p.WakeTime)),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
