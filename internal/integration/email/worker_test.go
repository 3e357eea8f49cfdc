package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-hub/backend/internal/application/adapter"
	"github.com/finance-hub/backend/internal/domain/entity"
	domainerror "github.com/finance-hub/backend/internal/domain/error"
	"github.com/finance-hub/backend/internal/integration/email/templates"
)

type memoryQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newMemoryQueue(jobs ...*entity.EmailJob) *memoryQueue {
	q := &memoryQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
	for _, job := range jobs {
		q.jobs[job.ID] = job
	}
	return q
}

func (q *memoryQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && len(pending) < limit {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (q *memoryQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	return q.jobs[id], nil
}

type fakeSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (s *fakeSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ResendID: "re_test_123"}, nil
}

func newTestWorker(t *testing.T, queue adapter.EmailQueueRepository, sender adapter.EmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func monthlyReportJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateMonthlyReport,
		"user@example.com",
		"Test User",
		"Your March 2025 report",
		map[string]interface{}{
			"period":         "March 2025",
			"currency":       "USD",
			"income_total":   "5000.00",
			"expense_total":  "3200.50",
			"net_total":      "1799.50",
			"checks_matched": 3,
			"checks_missing": 1,
			"checks_pending": 0,
		},
	)
}

func TestWorker_ProcessBatch(t *testing.T) {
	t.Run("sends pending job and marks it sent", func(t *testing.T) {
		job := monthlyReportJob()
		queue := newMemoryQueue(job)
		sender := &fakeSender{}
		worker := newTestWorker(t, queue, sender)

		worker.processBatch(context.Background())

		if len(sender.sent) != 1 {
			t.Fatalf("sent %d emails, expected 1", len(sender.sent))
		}
		if sender.sent[0].To != "user@example.com" {
			t.Errorf("recipient = %q, expected user@example.com", sender.sent[0].To)
		}
		if !strings.Contains(sender.sent[0].HTML, "March 2025") {
			t.Error("rendered HTML does not mention the report period")
		}
		if job.Status != entity.EmailStatusSent {
			t.Errorf("job status = %q, expected sent", job.Status)
		}
		if job.ResendID != "re_test_123" {
			t.Errorf("job resend ID = %q, expected re_test_123", job.ResendID)
		}
	})

	t.Run("transient send failure requeues the job", func(t *testing.T) {
		job := monthlyReportJob()
		queue := newMemoryQueue(job)
		sender := &fakeSender{err: errors.New("connection reset")}
		worker := newTestWorker(t, queue, sender)

		worker.processBatch(context.Background())

		if job.Status != entity.EmailStatusPending {
			t.Errorf("job status = %q, expected pending for retry", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("job attempts = %d, expected 1", job.Attempts)
		}
	})

	t.Run("permanent send failure fails the job", func(t *testing.T) {
		job := monthlyReportJob()
		queue := newMemoryQueue(job)
		sender := &fakeSender{err: domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure,
			"invalid recipient",
			errors.New("422 from provider"),
		)}
		worker := newTestWorker(t, queue, sender)

		worker.processBatch(context.Background())

		if job.Status != entity.EmailStatusFailed {
			t.Errorf("job status = %q, expected failed", job.Status)
		}
	})

	t.Run("unknown template fails permanently without sending", func(t *testing.T) {
		job := entity.NewEmailJob("no_such_template", "user@example.com", "Test User", "subject", nil)
		queue := newMemoryQueue(job)
		sender := &fakeSender{}
		worker := newTestWorker(t, queue, sender)

		worker.processBatch(context.Background())

		if len(sender.sent) != 0 {
			t.Fatalf("sent %d emails, expected none", len(sender.sent))
		}
		if job.Status != entity.EmailStatusFailed {
			t.Errorf("job status = %q, expected failed", job.Status)
		}
	})

	t.Run("exhausted retries fail the job", func(t *testing.T) {
		job := monthlyReportJob()
		queue := newMemoryQueue(job)
		sender := &fakeSender{err: errors.New("connection reset")}
		worker := newTestWorker(t, queue, sender)

		for i := 0; i < job.MaxAttempts; i++ {
			// Requeued jobs with a backoff delay are not ready yet.
			job.Status = entity.EmailStatusPending
			worker.processBatch(context.Background())
		}

		if job.Status != entity.EmailStatusFailed {
			t.Errorf("job status = %q after %d attempts, expected failed", job.Status, job.Attempts)
		}
		if job.Attempts != job.MaxAttempts {
			t.Errorf("job attempts = %d, expected %d", job.Attempts, job.MaxAttempts)
		}
	})
}
