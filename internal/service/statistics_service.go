package service

import (
	"context"

	"github.com/gurusoftware/backend/internal/model"
	"github.com/gurusoftware/backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

// StatisticsService reports record counts for the admin dashboard.
type StatisticsService interface {
	Get(ctx context.Context) (*model.Statistics, error)
}

type statisticsServiceImpl struct {
	contacts     repository.ContactRepository
	applications repository.JobApplicationRepository
}

// NewStatisticsService creates a StatisticsService over both repositories.
func NewStatisticsService(contacts repository.ContactRepository, applications repository.JobApplicationRepository) StatisticsService {
	return &statisticsServiceImpl{contacts: contacts, applications: applications}
}

// Get runs the four count queries concurrently. Nothing is cached.
func (s *statisticsServiceImpl) Get(ctx context.Context) (*model.Statistics, error) {
	var stats model.Statistics
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalContacts, err = s.contacts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalApplications, err = s.applications.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.NewContacts, err = s.contacts.CountByStatus(gctx, model.StatusNew)
		return err
	})
	g.Go(func() (err error) {
		stats.NewApplications, err = s.applications.CountByStatus(gctx, model.StatusNew)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storageError("count statistics", err)
	}
	return &stats, nil
}
