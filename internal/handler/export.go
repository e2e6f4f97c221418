package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/report"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler renders the office overview as a downloadable file.
type ExportHandler struct {
	Aggregator *report.Aggregator
}

func NewExportHandler(agg *report.Aggregator) *ExportHandler {
	return &ExportHandler{Aggregator: agg}
}

var exportHeaders = []string{"Agent", "Username", "Total Commission"}

// OfficeReport exports the year's agent totals. The format query picks
// csv or xlsx; year defaults to the current one.
func (h *ExportHandler) OfficeReport(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "year must be a number")
			return
		}
		year = parsed
	}

	agents, err := h.Aggregator.OfficeOverview(c.Request.Context(), year)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to build office overview")
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		h.writeCSV(c, year, agents)
	case "xlsx":
		h.writeXLSX(c, year, agents)
	default:
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "format must be csv or xlsx")
	}
}

func (h *ExportHandler) writeCSV(c *gin.Context, year int, agents []report.AgentYearTotal) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"office_report_%d.csv\"", year))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, a := range agents {
		writer.Write([]string{a.FullName, a.Username, a.Total.StringFixed(2)})
	}
}

func (h *ExportHandler) writeXLSX(c *gin.Context, year int, agents []report.AgentYearTotal) {
	f := excelize.NewFile()
	sheetName := fmt.Sprintf("Office %d", year)
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create worksheet")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, a := range agents {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), a.FullName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), a.Username)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), a.Total.StringFixed(2))
	}

	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 18)
	f.SetColWidth(sheetName, "C", "C", 18)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"office_report_%d.xlsx\"", year))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to write workbook")
	}
}
