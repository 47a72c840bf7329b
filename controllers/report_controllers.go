package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/yummy-app/services"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// GetProfitChart -> GET /reports/profit-chart.png?year=
func (rc *ReportController) GetProfitChart(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	// Render ke buffer dulu agar error tetap bisa dikirim sebagai JSON
	var buf bytes.Buffer
	if err := rc.Reports.ProfitChart(c.Request.Context(), year, &buf); err != nil {
		respondDomainError(c, err)
		return
	}

	name := services.ReportFileName("profit", year, "png")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", name))
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// GetAnalyticsPDF -> GET /reports/analytics.pdf?year=
func (rc *ReportController) GetAnalyticsPDF(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := rc.Reports.AnalyticsPDF(c.Request.Context(), year, &buf); err != nil {
		respondDomainError(c, err)
		return
	}

	name := services.ReportFileName("analytics", year, "pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
