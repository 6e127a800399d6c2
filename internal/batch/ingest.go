package batch

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pvillanueva/fup-consult/internal/entity"
)

// ErrEmptyInput is returned when an uploaded file yields no valid RUCs.
var ErrEmptyInput = errors.New("no valid rucs in input")

var rucPattern = regexp.MustCompile(`^\d{11}$`)

// Submit validates a RUC list and creates a pending job with one item per
// distinct RUC. Entries that are not exactly 11 digits are dropped, and
// duplicates are removed preserving first-seen order.
func (s *Service) Submit(ctx context.Context, filename string, rucs []string) (*entity.BatchJob, error) {
	cleaned := sanitizeRUCs(rucs)
	if len(cleaned) == 0 {
		return nil, ErrEmptyInput
	}
	job, err := s.jobs.CreateWithItems(ctx, filename, cleaned, s.cfg.MaxRetries)
	if err != nil {
		return nil, err
	}
	s.logger.Info("created batch job", "job_id", job.ID, "filename", filename, "total_items", job.TotalItems)
	return job, nil
}

// SubmitFile parses an uploaded file and submits the RUCs it contains. XLSX
// files are read from the first column of the active sheet, skipping the
// header row; anything else is treated as one RUC per line.
func (s *Service) SubmitFile(ctx context.Context, filename string, content []byte) (*entity.BatchJob, error) {
	var (
		rucs []string
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		rucs, err = parseXLSX(content)
	} else {
		rucs, err = parseLines(content)
	}
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, filename, rucs)
}

func parseXLSX(content []byte) ([]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	var rucs []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		rucs = append(rucs, row[0])
	}
	return rucs, nil
}

func parseLines(content []byte) ([]string, error) {
	var rucs []string
	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		// tolerate single-column CSV by taking the first field
		line, _, _ := strings.Cut(sc.Text(), ",")
		rucs = append(rucs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rucs, nil
}

func sanitizeRUCs(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		ruc := strings.TrimSpace(r)
		if !rucPattern.MatchString(ruc) {
			continue
		}
		if _, dup := seen[ruc]; dup {
			continue
		}
		seen[ruc] = struct{}{}
		out = append(out, ruc)
	}
	return out
}
