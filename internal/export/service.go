package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pvillanueva/fup-consult/internal/entity"
	"github.com/pvillanueva/fup-consult/internal/provider"
)

// LargeDatasetThreshold is the record count above which the batch artifact
// switches from the styled workbook to the lean sectioned CSV.
const LargeDatasetThreshold = 10000

// Service produces export artifacts. It implements the assembler contract of
// the batch runner and serves the on-demand export operations.
type Service struct {
	resultsDir string
	logger     *slog.Logger
}

func NewService(resultsDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{resultsDir: resultsDir, logger: logger}
}

// AssembleResult writes the consolidated artifact for a finished job under
// the results directory and returns its path. Datasets up to the threshold
// get the styled workbook; above it the artifact degrades to the sectioned
// CSV, streamed straight to disk.
func (s *Service) AssembleResult(_ context.Context, job *entity.BatchJob, items []*entity.BatchItem) (string, error) {
	start := time.Now()
	records := decodeResults(items, s.logger)

	if err := os.MkdirAll(s.resultsDir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	var path string
	if len(records) > LargeDatasetThreshold {
		s.logger.Info("large dataset detected, writing sectioned csv", "job_id", job.ID, "records", len(records))
		path = filepath.Join(s.resultsDir, fmt.Sprintf("batch_result_%s.csv", job.ID))
		if err := s.writeCSVFile(path, records, job.Filename); err != nil {
			return "", err
		}
	} else {
		f, err := BuildBatchXLSX(records, job.Filename, time.Now(), false)
		if err != nil {
			return "", fmt.Errorf("build workbook: %w", err)
		}
		defer f.Close()
		path = filepath.Join(s.resultsDir, fmt.Sprintf("batch_result_%s.xlsx", job.ID))
		if err := f.SaveAs(path); err != nil {
			return "", fmt.Errorf("save workbook: %w", err)
		}
	}

	s.logger.Info("export.batch.ok",
		"job_id", job.ID.String(),
		"records", len(records),
		"path", path,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}

func (s *Service) writeCSVFile(path string, records []*provider.Record, originalFilename string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := WriteBatchCSV(f, records, originalFilename, time.Now()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	return nil
}

// BatchCSV renders a job's completed items as sectioned CSV bytes.
func (s *Service) BatchCSV(job *entity.BatchJob, items []*entity.BatchItem) ([]byte, error) {
	records := decodeResults(items, s.logger)
	return BuildBatchCSV(records, job.Filename, time.Now())
}

// BatchXLSX renders a job's completed items as workbook bytes, switching to
// the stream writer above the threshold. Used when a caller explicitly asks
// for the spreadsheet form of a job whose stored artifact is the CSV.
func (s *Service) BatchXLSX(job *entity.BatchJob, items []*entity.BatchItem) ([]byte, error) {
	records := decodeResults(items, s.logger)
	f, err := BuildBatchXLSX(records, job.Filename, time.Now(), len(records) > LargeDatasetThreshold)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// FichaXLSX renders a single provider record as XLSX bytes.
func (s *Service) FichaXLSX(rec *provider.Record) ([]byte, error) {
	f, err := BuildFichaXLSX(rec)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
