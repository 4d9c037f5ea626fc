// Package service provides high-level operations composing the domain
// managers with optional infrastructure (ranking cache).
package service

import (
	"context"

	"github.com/alem-hub/campus-gradebook/internal/domain/gradebook"
	"github.com/alem-hub/campus-gradebook/pkg/logger"
)

// RankingCache is the caching capability the service consumes. Implemented
// by the Redis ranking cache; nil means caching is disabled.
type RankingCache interface {
	// GetTop returns the first count entries of the cached snapshot.
	GetTop(ctx context.Context, count int) ([]gradebook.RankEntry, error)

	// Store caches the full ranking snapshot.
	Store(ctx context.Context, entries []gradebook.RankEntry) error

	// Invalidate drops the cached snapshot.
	Invalidate(ctx context.Context) error
}

// RankingService serves top-N rankings, consulting the cache before
// recomputing averages from the score ledger.
type RankingService struct {
	scores *gradebook.Manager
	cache  RankingCache
	log    *logger.Logger
}

// NewRankingService creates a new RankingService. cache may be nil.
func NewRankingService(scores *gradebook.Manager, cache RankingCache, log *logger.Logger) *RankingService {
	if log == nil {
		log = logger.Default()
	}
	return &RankingService{
		scores: scores,
		cache:  cache,
		log:    log.With(logger.Component("ranking_service")),
	}
}

// RecordScore adds a score to the ledger and invalidates the cached ranking.
func (s *RankingService) RecordScore(ctx context.Context, studentID string, score *gradebook.Score) error {
	if err := s.scores.AddScore(studentID, score); err != nil {
		return err
	}
	s.log.Debug("score recorded",
		logger.StudentID(studentID),
		logger.Subject(score.Subject),
		logger.Points(score.Points))

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			// Stale cache entries expire on their own; log and move on.
			s.log.Warn("failed to invalidate ranking cache", logger.Err(err))
		}
	}
	return nil
}

// TopStudents returns the first count ranking entries, averages descending.
func (s *RankingService) TopStudents(ctx context.Context, count int) []gradebook.RankEntry {
	if count <= 0 {
		return []gradebook.RankEntry{}
	}

	// 1. Try cache if available
	if s.cache != nil {
		entries, err := s.cache.GetTop(ctx, count)
		if err == nil {
			s.log.Debug("ranking served from cache", logger.Count(len(entries)))
			return entries
		}
	}

	// 2. Recompute the full ranking, cache it, return the requested slice
	full := s.scores.GetTopStudents(s.scores.Count())

	if s.cache != nil {
		if err := s.cache.Store(ctx, full); err != nil {
			s.log.Warn("failed to cache ranking", logger.Err(err))
		}
	}

	if count > len(full) {
		count = len(full)
	}
	return full[:count]
}

// Average reports the student's current average from the ledger.
func (s *RankingService) Average(studentID string) (float64, error) {
	return s.scores.CalculateAverage(studentID)
}
