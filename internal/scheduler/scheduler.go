// Package scheduler genera las hojas de conteo en PDF según el calendario de
// cada nivel: mensual el día 1, trimestral en enero/abril/julio/octubre,
// semestral en enero/julio y anual en enero.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tu-usuario/hotel-stock/internal/application/exporting"
	"github.com/tu-usuario/hotel-stock/internal/domain/entity"
	"github.com/tu-usuario/hotel-stock/internal/domain/report"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/pdf"
	"github.com/tu-usuario/hotel-stock/pkg/logger"
)

const generateTimeout = 2 * time.Minute

// Scheduler agenda la generación periódica de hojas de conteo.
type Scheduler struct {
	cron      *cron.Cron
	reports   *exporting.ReportUseCase
	pdfGen    *pdf.CountSheetGenerator
	outputDir string
	log       *logger.Logger
}

// NewScheduler construye el scheduler.
func NewScheduler(reports *exporting.ReportUseCase, pdfGen *pdf.CountSheetGenerator, outputDir string, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		reports:   reports,
		pdfGen:    pdfGen,
		outputDir: outputDir,
		log:       log,
	}
}

// Start registra las cuatro entradas y arranca el cron. Todas corren a las
// 06:00 del día 1, antes del turno de mañana.
func (s *Scheduler) Start() error {
	entries := []struct {
		spec string
		tier string
	}{
		{"0 6 1 * *", entity.FrequencyMonthly},
		{"0 6 1 1,4,7,10 *", entity.FrequencyQuarterly},
		{"0 6 1 1,7 *", entity.FrequencySemiannual},
		{"0 6 1 1 *", entity.FrequencyAnnual},
	}
	for _, e := range entries {
		tier := e.tier
		if _, err := s.cron.AddFunc(e.spec, func() { s.generate(tier) }); err != nil {
			return fmt.Errorf("agendar %s: %w", tier, err)
		}
	}
	s.log.Info().Str("output_dir", s.outputDir).Msg("scheduler de hojas de conteo iniciado")
	s.cron.Start()
	return nil
}

// Stop detiene el cron; los trabajos en curso terminan solos.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("deteniendo scheduler")
	s.cron.Stop()
}

func (s *Scheduler) generate(tier string) {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	sheet, err := s.reports.CountSheet(tier, report.Scope{})
	if err != nil {
		s.log.Error().Err(err).Str("tier", tier).Msg("armar hoja de conteo")
		return
	}
	doc, err := s.pdfGen.Generate(ctx, sheet)
	if err != nil {
		s.log.Error().Err(err).Str("tier", tier).Msg("generar PDF")
		return
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", s.outputDir).Msg("crear directorio de salida")
		return
	}
	name := fmt.Sprintf("count-sheet-%s-%s.pdf", tier, time.Now().Format("2006-01-02"))
	path := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("escribir PDF")
		return
	}
	s.log.Info().Str("path", path).Int("lines", sheet.TotalLines).Msg("hoja de conteo generada")
}
