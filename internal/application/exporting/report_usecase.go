// Package exporting arma las hojas de conteo físico y el intercambio CSV
// con el formato legado de la hoja de cálculo del hotel.
package exporting

import (
	"time"

	"github.com/tu-usuario/hotel-stock/internal/application/ledger"
	"github.com/tu-usuario/hotel-stock/internal/domain"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/domain/report"
)

// CountSheet hoja de conteo lista para renderizar (HTML o PDF).
type CountSheet struct {
	Title      string // 庫存盤點表 - <tipo>
	TierLabel  string // 月盤, 季盤, 半年盤, 年盤
	Date       string // fecha de generación
	TotalLines int
	Sections   []report.Section
}

// ReportUseCase selecciona el contenido del reporte sobre el snapshot vivo.
type ReportUseCase struct {
	view *ledger.Service
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(view *ledger.Service) *ReportUseCase {
	return &ReportUseCase{view: view}
}

// CountSheet arma la hoja para un nivel de frecuencia y un alcance. La
// inclusión por nivel es acumulativa (un 季盤 arrastra lo mensual) y solo
// entran artículos con stock distinto de cero en el alcance.
func (uc *ReportUseCase) CountSheet(tier string, scope report.Scope) (*CountSheet, error) {
	if !entity.IsValidFrequency(tier) {
		return nil, domain.ErrInvalidInput
	}
	if scope.Department != "" && !entity.IsValidDepartment(scope.Department) {
		return nil, domain.ErrInvalidInput
	}
	if scope.WarehouseID != "" {
		if _, err := uc.view.Warehouse(scope.WarehouseID); err != nil {
			return nil, err
		}
	}

	sections := report.Select(
		tier, scope,
		uc.view.Items(), uc.view.Warehouses(), uc.view.Assignments(),
		uc.view.StockFunc(),
	)
	label := report.TierLabel(tier)
	return &CountSheet{
		Title:      "庫存盤點表 - " + label,
		TierLabel:  label,
		Date:       time.Now().Format("2006/01/02"),
		TotalLines: report.TotalLines(sections),
		Sections:   sections,
	}, nil
}
