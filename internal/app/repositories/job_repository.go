package repositories

import (
	"sync"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/pkg/apperrors"
	"github.com/unistone/campus/internal/store"
)

// JobRepository stores the placements board
type JobRepository struct {
	db *store.Store
	mu sync.Mutex
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *store.Store) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) load() []models.Job {
	var jobs []models.Job
	r.db.Read(KeyJobs, &jobs, []models.Job{})
	return jobs
}

// List returns all job postings
func (r *JobRepository) List() ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}

// FindByID returns the job matching the ID
func (r *JobRepository) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, j := range r.load() {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

// Insert appends a job posting to the board
func (r *JobRepository) Insert(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := append(r.load(), *job)
	r.db.Write(KeyJobs, jobs)
	return nil
}

// Update replaces the stored job matching the ID
func (r *JobRepository) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := r.load()
	for i := range jobs {
		if jobs[i].ID == job.ID {
			jobs[i] = *job
			r.db.Write(KeyJobs, jobs)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

// Delete removes the job matching the ID
func (r *JobRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := r.load()
	for i := range jobs {
		if jobs[i].ID == id {
			jobs = append(jobs[:i], jobs[i+1:]...)
			r.db.Write(KeyJobs, jobs)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

// AddApplicant records a student application on a job posting. Applying
// twice to the same posting is rejected.
func (r *JobRepository) AddApplicant(jobID string, applicant models.Applicant) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := r.load()
	for i := range jobs {
		if jobs[i].ID != jobID {
			continue
		}
		for _, a := range jobs[i].Applicants {
			if a.StudentID == applicant.StudentID {
				return nil, apperrors.ErrResourceAlreadyExists
			}
		}
		jobs[i].Applicants = append(jobs[i].Applicants, applicant)
		r.db.Write(KeyJobs, jobs)
		job := jobs[i]
		return &job, nil
	}
	return nil, apperrors.ErrResourceNotFound
}
