package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/yeremiapane/yummy-app/analytics"
	"github.com/yeremiapane/yummy-app/utils"
)

const (
	chartWidth  = 1024
	chartHeight = 512
)

// ReportService renders analytics as PNG charts and PDF documents.
type ReportService struct {
	Engine *analytics.Engine
	log    logrus.FieldLogger
}

func NewReportService(engine *analytics.Engine, logger logrus.FieldLogger) *ReportService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ReportService{Engine: engine, log: logger}
}

// ReportFileName returns a unique download name such as
// "yummy-profit-2024-<uuid>.png".
func ReportFileName(kind string, year int, ext string) string {
	return fmt.Sprintf("yummy-%s-%d-%s.%s", kind, year, uuid.New().String(), ext)
}

// ProfitChart writes a bar chart of the year's cumulative profit, January to
// December, as PNG.
func (rs *ReportService) ProfitChart(ctx context.Context, year int, w io.Writer) error {
	report, err := rs.Engine.YearReport(ctx, year)
	if err != nil {
		return err
	}
	return renderProfitChart(report, w)
}

func renderProfitChart(report *analytics.YearReport, w io.Writer) error {
	bars := make([]chart.Value, 0, len(report.CumulativeProfit))
	maxProfit := 0.0
	// CumulativeProfit dimulai dari Desember, dibalik agar grafik urut Januari ke Desember
	for i := len(report.CumulativeProfit) - 1; i >= 0; i-- {
		entry := report.CumulativeProfit[i]
		bars = append(bars, chart.Value{
			Label: time.Month(entry.Month).String()[:3],
			Value: entry.Profit,
		})
		if entry.Profit > maxProfit {
			maxProfit = entry.Profit
		}
	}
	if maxProfit <= 0 {
		maxProfit = 1
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Cumulative profit %d", report.Year),
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   50,
		BarSpacing: 20,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxProfit * 1.1},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render profit chart: %w", err)
	}
	return nil
}

// AnalyticsPDF writes the year report as a PDF with the profit chart embedded.
func (rs *ReportService) AnalyticsPDF(ctx context.Context, year int, w io.Writer) error {
	report, err := rs.Engine.YearReport(ctx, year)
	if err != nil {
		return err
	}

	var png bytes.Buffer
	if err := renderProfitChart(report, &png); err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Yummy analytics %d", year), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("Yummy analytics report %d", year))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	summary := [][2]string{
		{"Orders", fmt.Sprintf("%d", report.Orders)},
		{"Total profit", utils.FormatCurrency(report.TotalProfit)},
		{"Top spenders", joinIDs(report.TopSpenders)},
		{"Most ordered dish", mostOrderedLabel(report)},
		{"Dishes not worth a price increase", joinIDs(report.NonWorthPriceIncrease)},
		{"Rated poorly without ordering", joinIDs(report.RatedButNotOrdered)},
	}
	for _, row := range summary {
		pdf.CellFormat(80, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(100, 8, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("profit", opts, &png)
	pdf.ImageOptions("profit", 10, pdf.GetY(), 190, 95, true, opts, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Monthly profit")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range report.MonthlyProfit {
		pdf.CellFormat(45, 7, time.Month(entry.Month).String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, utils.FormatCurrency(entry.Profit), "1", 1, "R", false, 0, "")
	}

	addRatingTable(pdf, "Top rated dishes", report.TopRatedDishes)
	addRatingTable(pdf, "Lowest rated dishes", report.LowestRatedDishes)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build analytics pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write analytics pdf: %w", err)
	}

	rs.log.WithField("year", year).Info("Analytics report generated")
	return nil
}

func addRatingTable(pdf *fpdf.Fpdf, title string, ratings []analytics.DishRating) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	if len(ratings) == 0 {
		pdf.Cell(0, 7, "No dishes")
		pdf.Ln(7)
		return
	}
	for _, r := range ratings {
		pdf.CellFormat(45, 7, fmt.Sprintf("Dish %d", r.DishID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%.2f", r.Average), "1", 1, "R", false, 0, "")
	}
}

func mostOrderedLabel(report *analytics.YearReport) string {
	if report.MostOrderedDish == nil {
		return "-"
	}
	return fmt.Sprintf("%d (%s)", report.MostOrderedDish.ID, report.MostOrderedDish.Name)
}

func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
