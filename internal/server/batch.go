// Package server exposes the batch and provider services over gRPC.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	fupv1 "github.com/pvillanueva/fup-consult/gen/proto/fup/v1"
	"github.com/pvillanueva/fup-consult/internal/batch"
	"github.com/pvillanueva/fup-consult/internal/common"
	"github.com/pvillanueva/fup-consult/internal/entity"
	"github.com/pvillanueva/fup-consult/internal/export"
)

type BatchServer struct {
	fupv1.UnimplementedBatchServiceServer
	svc     *batch.Service
	runner  *batch.Runner
	items   batch.ItemStore
	exports *export.Service
	logger  *slog.Logger
}

func NewBatchServer(svc *batch.Service, runner *batch.Runner, items batch.ItemStore, exports *export.Service, logger *slog.Logger) *BatchServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchServer{svc: svc, runner: runner, items: items, exports: exports, logger: logger}
}

func (s *BatchServer) SubmitBatch(ctx context.Context, req *fupv1.SubmitBatchRequest) (*fupv1.SubmitBatchResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	job, err := s.svc.SubmitFile(ctx, filename, req.GetContent())
	if err != nil {
		if errors.Is(err, batch.ErrEmptyInput) {
			return nil, common.InvalidArgumentError("no valid rucs in input file")
		}
		s.logger.Error("submit batch failed", "filename", filename, "err", err)
		return nil, common.InternalError("submit batch failed")
	}

	if req.GetStart() {
		if err := s.runner.Enqueue(ctx, job.ID); err != nil {
			s.logger.Error("enqueue batch failed", "job_id", job.ID, "err", err)
			return nil, common.InternalError("enqueue batch failed")
		}
	}
	return &fupv1.SubmitBatchResponse{Job: jobToProto(job)}, nil
}

func (s *BatchServer) StartBatch(ctx context.Context, req *fupv1.StartBatchRequest) (*fupv1.StartBatchResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.svc.Job(ctx, jobID)
	if err != nil {
		return nil, jobLookupError(err)
	}
	if job.Status.Terminal() {
		return nil, common.FailedPreconditionError(fmt.Sprintf("job is already %s", job.Status))
	}
	if err := s.runner.Enqueue(ctx, jobID); err != nil {
		s.logger.Error("enqueue batch failed", "job_id", jobID, "err", err)
		return nil, common.InternalError("enqueue batch failed")
	}
	return &fupv1.StartBatchResponse{Job: jobToProto(job)}, nil
}

func (s *BatchServer) GetBatchStatus(ctx context.Context, req *fupv1.GetBatchStatusRequest) (*fupv1.GetBatchStatusResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	st, err := s.svc.Status(ctx, jobID)
	if err != nil {
		return nil, jobLookupError(err)
	}

	byStatus := make(map[string]int32, len(st.ItemsByStatus))
	for k, v := range st.ItemsByStatus {
		byStatus[string(k)] = int32(v)
	}
	resp := &fupv1.GetBatchStatusResponse{
		Job:           statusToProto(st),
		ItemsByStatus: byStatus,
	}
	if req.GetIncludeSamples() {
		for _, sample := range st.SampleResults {
			resp.SampleResults = append(resp.SampleResults, string(sample))
		}
	}
	return resp, nil
}

func (s *BatchServer) CancelBatch(ctx context.Context, req *fupv1.CancelBatchRequest) (*fupv1.CancelBatchResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	if err := s.svc.Cancel(ctx, jobID); err != nil {
		if errors.Is(err, batch.ErrNotCancellable) {
			return nil, common.FailedPreconditionError("job is not in a cancellable state")
		}
		return nil, jobLookupError(err)
	}
	job, err := s.svc.Job(ctx, jobID)
	if err != nil {
		return nil, jobLookupError(err)
	}
	return &fupv1.CancelBatchResponse{Job: jobToProto(job)}, nil
}

func (s *BatchServer) DownloadResult(ctx context.Context, req *fupv1.DownloadResultRequest) (*fupv1.DownloadResultResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	format := strings.ToLower(strings.TrimSpace(req.GetFormat()))

	job, err := s.svc.Job(ctx, jobID)
	if err != nil {
		return nil, jobLookupError(err)
	}

	switch format {
	case "", "xlsx":
		if job.HasResultFile() && (format == "" || strings.HasSuffix(*job.ResultFile, ".xlsx")) {
			content, err := os.ReadFile(*job.ResultFile)
			if err != nil {
				s.logger.Error("read result file failed", "job_id", jobID, "path", *job.ResultFile, "err", err)
				return nil, common.InternalError("read result file failed")
			}
			return &fupv1.DownloadResultResponse{
				Content:  content,
				Filename: filepath.Base(*job.ResultFile),
			}, nil
		}
		if !job.HasResultFile() {
			return nil, common.FailedPreconditionError("job has no result file yet")
		}
		// the stored artifact is the large-dataset csv; build the workbook on demand
		items, err := s.items.ListCompleted(ctx, jobID)
		if err != nil {
			s.logger.Error("list completed items failed", "job_id", jobID, "err", err)
			return nil, common.InternalError("list completed items failed")
		}
		content, err := s.exports.BatchXLSX(job, items)
		if err != nil {
			s.logger.Error("xlsx export failed", "job_id", jobID, "err", err)
			return nil, common.InternalError("xlsx export failed")
		}
		return &fupv1.DownloadResultResponse{
			Content:  content,
			Filename: fmt.Sprintf("batch_result_%s.xlsx", jobID),
		}, nil
	case "csv":
		if !job.Status.Terminal() {
			return nil, common.FailedPreconditionError("job has not finished yet")
		}
		items, err := s.items.ListCompleted(ctx, jobID)
		if err != nil {
			s.logger.Error("list completed items failed", "job_id", jobID, "err", err)
			return nil, common.InternalError("list completed items failed")
		}
		content, err := s.exports.BatchCSV(job, items)
		if err != nil {
			s.logger.Error("csv export failed", "job_id", jobID, "err", err)
			return nil, common.InternalError("csv export failed")
		}
		return &fupv1.DownloadResultResponse{
			Content:  content,
			Filename: fmt.Sprintf("batch_result_%s.csv", jobID),
		}, nil
	default:
		return nil, common.InvalidArgumentErrorf("unsupported format %q", format)
	}
}

func parseJobID(raw string) (uuid.UUID, error) {
	id := strings.TrimSpace(raw)
	jobID, err := uuid.Parse(id)
	if err != nil || id == "" {
		return uuid.Nil, common.InvalidArgumentError("job_id must be a UUID")
	}
	return jobID, nil
}

func jobLookupError(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NotFoundError("job not found")
	}
	return common.InternalErrorf("job lookup failed: %v", err)
}

func jobToProto(job *entity.BatchJob) *fupv1.BatchJob {
	pb := &fupv1.BatchJob{
		Id:                 job.ID.String(),
		Filename:           job.Filename,
		Status:             string(job.Status),
		TotalItems:         int32(job.TotalItems),
		CompletedItems:     int32(job.CompletedItems),
		FailedItems:        int32(job.FailedItems),
		PendingItems:       int32(job.PendingItems()),
		ProgressPercentage: int32(job.ProgressPercentage()),
		CreatedAt:          job.CreatedAt.Format(time.RFC3339Nano),
		HasResultFile:      job.HasResultFile(),
	}
	if job.StartedAt != nil {
		pb.StartedAt = job.StartedAt.Format(time.RFC3339Nano)
	}
	if job.CompletedAt != nil {
		pb.CompletedAt = job.CompletedAt.Format(time.RFC3339Nano)
	}
	if job.ErrorMessage != nil {
		pb.ErrorMessage = *job.ErrorMessage
	}
	return pb
}

func statusToProto(st *batch.Status) *fupv1.BatchJob {
	pb := &fupv1.BatchJob{
		Id:                 st.ID.String(),
		Filename:           st.Filename,
		Status:             string(st.Status),
		TotalItems:         int32(st.TotalItems),
		CompletedItems:     int32(st.CompletedItems),
		FailedItems:        int32(st.FailedItems),
		PendingItems:       int32(st.PendingItems),
		ProgressPercentage: int32(st.ProgressPercentage),
		CreatedAt:          st.CreatedAt.Format(time.RFC3339Nano),
		HasResultFile:      st.HasResultFile,
	}
	if st.StartedAt != nil {
		pb.StartedAt = st.StartedAt.Format(time.RFC3339Nano)
	}
	if st.CompletedAt != nil {
		pb.CompletedAt = st.CompletedAt.Format(time.RFC3339Nano)
	}
	if st.ErrorMessage != nil {
		pb.ErrorMessage = *st.ErrorMessage
	}
	return pb
}
