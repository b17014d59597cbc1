package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/repositories"
)

// JobService defines the interface for placements board operations
type JobService interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error
	Apply(ctx context.Context, jobID, studentID string) (*models.Job, error)
}

// jobServiceImpl implements JobService
type jobServiceImpl struct {
	jobRepo  *repositories.JobRepository
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo *repositories.JobRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) JobService {
	return &jobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListJobs returns all job postings
func (s *jobServiceImpl) ListJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobRepo.List()
}

// GetJob returns one job posting by ID
func (s *jobServiceImpl) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return s.jobRepo.FindByID(id)
}

func jobFromRequest(id string, applicants []models.Applicant, req *dto.CreateJobRequest) *models.Job {
	jobType := models.JobType(req.Type)
	if jobType == "" {
		jobType = models.JobFullTime
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	if applicants == nil {
		applicants = []models.Applicant{}
	}
	return &models.Job{
		ID:         id,
		Title:      req.Title,
		Company:    req.Company,
		Type:       jobType,
		Location:   req.Location,
		Salary:     req.Salary,
		Tags:       tags,
		Niche:      req.Niche,
		Applicants: applicants,
	}
}

// CreateJob posts a job opening. New postings start with no applicants.
func (s *jobServiceImpl) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job := jobFromRequest(newID("JOB"), nil, req)
	if err := s.jobRepo.Insert(job); err != nil {
		return nil, err
	}

	s.logger.Info().Str("jobID", job.ID).Str("company", job.Company).Msg("Job posted")
	return job, nil
}

// UpdateJob replaces a posting, keeping its applicant list
func (s *jobServiceImpl) UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	existing, err := s.jobRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	job := jobFromRequest(id, existing.Applicants, req)
	if err := s.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a posting from the board
func (s *jobServiceImpl) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info().Str("jobID", id).Msg("Job deleted")
	return nil
}

// Apply records a student application against a posting
func (s *jobServiceImpl) Apply(ctx context.Context, jobID, studentID string) (*models.Job, error) {
	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}

	applicant := models.Applicant{
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentImage: student.Image,
		AppliedDate:  time.Now().Format("2006-01-02"),
		Status:       models.ApplicantPending,
	}

	job, err := s.jobRepo.AddApplicant(jobID, applicant)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("jobID", jobID).Str("studentID", studentID).Msg("Job application recorded")
	return job, nil
}
