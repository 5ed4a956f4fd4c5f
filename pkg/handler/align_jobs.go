package handler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yumyai/alignview/pkg/align"
)

// AlignJobStatus represents the lifecycle of an asynchronous alignment.
type AlignJobStatus string

const (
	AlignJobQueued    AlignJobStatus = "queued"
	AlignJobRunning   AlignJobStatus = "running"
	AlignJobCompleted AlignJobStatus = "completed"
	AlignJobFailed    AlignJobStatus = "failed"
)

// AlignJob tracks one alignment request while it runs. Circular alignments
// of long sequences can take a while, so callers may poll instead of
// holding the request open.
type AlignJob struct {
	ID        string         `json:"id"`
	Status    AlignJobStatus `json:"status"`
	Result    *align.Result  `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// AlignJobManager stores alignment job states indexed by job ID.
type AlignJobManager struct {
	mu   sync.RWMutex
	jobs map[string]*AlignJob
}

// NewAlignJobManager constructs a job manager with no jobs.
func NewAlignJobManager() *AlignJobManager {
	return &AlignJobManager{
		jobs: make(map[string]*AlignJob),
	}
}

// NewJob registers a queued job.
func (m *AlignJobManager) NewJob() *AlignJob {
	job := &AlignJob{
		ID:        uuid.NewString(),
		Status:    AlignJobQueued,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()
	return job
}

// SetRunning marks the job as running.
func (m *AlignJobManager) SetRunning(jobID string) {
	m.updateJob(jobID, func(job *AlignJob) {
		job.Status = AlignJobRunning
	})
}

// CompleteJob stores the alignment result and marks the job complete.
func (m *AlignJobManager) CompleteJob(jobID string, result *align.Result) {
	m.updateJob(jobID, func(job *AlignJob) {
		job.Status = AlignJobCompleted
		job.Result = result
	})
}

// FailJob records a failure and attaches a user-facing error message.
func (m *AlignJobManager) FailJob(jobID string, err error) {
	m.updateJob(jobID, func(job *AlignJob) {
		job.Status = AlignJobFailed
		job.Error = err.Error()
	})
}

// GetJob fetches a snapshot of a job by ID.
func (m *AlignJobManager) GetJob(jobID string) (AlignJob, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return AlignJob{}, false
	}
	return *job, true
}

func (m *AlignJobManager) updateJob(jobID string, update func(job *AlignJob)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return
	}

	update(job)
	job.UpdatedAt = time.Now()
}
