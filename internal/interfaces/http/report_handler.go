package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/hotel-stock/internal/application/dto"
	"github.com/tu-usuario/hotel-stock/internal/application/exporting"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/domain/report"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/pdf"
)

// ReportHandler genera hojas de conteo (json, html, pdf) y el intercambio CSV.
type ReportHandler struct {
	reports *exporting.ReportUseCase
	csv     *exporting.CSVUseCase
	pdfGen  *pdf.CountSheetGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *exporting.ReportUseCase, csv *exporting.CSVUseCase, pdfGen *pdf.CountSheetGenerator) *ReportHandler {
	return &ReportHandler{reports: reports, csv: csv, pdfGen: pdfGen}
}

// CountSheet godoc
// @Summary      Hoja de conteo físico por nivel de frecuencia
// @Description  La inclusión es acumulativa: quarterly arrastra monthly, etc.
// @Description  El alcance estrecha a un departamento o a una bodega.
// @Tags         reports
// @Produce      json
// @Param        tier          query  string  false  "monthly, quarterly, semiannual, annual"  default(monthly)
// @Param        department    query  string  false  "Departamento"
// @Param        warehouse_id  query  string  false  "Bodega concreta (gana sobre department)"
// @Param        format        query  string  false  "json, html o pdf"  default(json)
// @Success      200  {object}  exporting.CountSheet
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/count-sheet [get]
func (h *ReportHandler) CountSheet(c *fiber.Ctx) error {
	tier := c.Query("tier", entity.FrequencyMonthly)
	scope := report.Scope{
		Department:  c.Query("department"),
		WarehouseID: c.Query("warehouse_id"),
	}
	sheet, err := h.reports.CountSheet(tier, scope)
	if err != nil {
		return writeError(c, err)
	}

	switch c.Query("format", "json") {
	case "json":
		return c.JSON(sheet)
	case "html":
		html, err := exporting.RenderHTML(sheet)
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(html)
	case "pdf":
		doc, err := h.pdfGen.Generate(c.Context(), sheet)
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="count-sheet.pdf"`)
		return c.Send(doc)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser json, html o pdf"})
}

// ExportCSV godoc
// @Summary      Exportar el inventario en CSV (formato legado, UTF-8 con BOM)
// @Tags         reports
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/exports/csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.csv.Export()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory.csv"`)
	return c.Send(data)
}

// ImportCSV godoc
// @Summary      Importar inventario desde CSV (formato legado)
// @Description  Reconcilia contra el estado actual: crea bodegas y artículos
// @Description  faltantes y ajusta cantidades por diferencia, en un solo lote.
// @Tags         reports
// @Accept       text/csv
// @Produce      json
// @Param        operator  query  string  false  "Operador que registra la importación"
// @Success      200  {object}  exporting.ImportSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/imports/csv [post]
func (h *ReportHandler) ImportCSV(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo CSV vacío"})
	}
	summary, err := h.csv.Import(c.Context(), bytes.NewReader(body), c.Query("operator"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
