package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func summary(id string, winner int) *model.MatchSummary {
	return &model.MatchSummary{
		ID:          model.MatchID(id),
		Winner:      winner,
		WinnerLabel: model.CombatantAI.Label(winner),
		WinnerKind:  model.CombatantAI,
		WinnerStats: model.HitStats{Hits: 15, Total: 40},
		CompletedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetMatchSummary() {
	err := s.storage.SaveMatchSummary(s.ctx, summary("match-1", 2))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatchSummary(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(2, retrieved.Winner)
	s.Equal(model.HitStats{Hits: 15, Total: 40}, retrieved.WinnerStats)
}

func (s *StorageSuite) TestGetMatchSummaryNotFound() {
	_, err := s.storage.GetMatchSummary(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestStoredSummaryIsACopy() {
	original := summary("match-1", 1)
	_ = s.storage.SaveMatchSummary(s.ctx, original)
	original.Winner = 2

	retrieved, _ := s.storage.GetMatchSummary(s.ctx, "match-1")
	s.Equal(1, retrieved.Winner)
}

func (s *StorageSuite) TestListMatchSummariesInSaveOrder() {
	_ = s.storage.SaveMatchSummary(s.ctx, summary("b", 1))
	_ = s.storage.SaveMatchSummary(s.ctx, summary("a", 2))
	_ = s.storage.SaveMatchSummary(s.ctx, summary("b", 2)) // overwrite keeps position

	list, err := s.storage.ListMatchSummaries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(model.MatchID("b"), list[0].ID)
	s.Equal(2, list[0].Winner)
	s.Equal(model.MatchID("a"), list[1].ID)
}

func (s *StorageSuite) TestDeleteMatchSummary() {
	_ = s.storage.SaveMatchSummary(s.ctx, summary("match-1", 1))

	err := s.storage.DeleteMatchSummary(s.ctx, "match-1")
	s.Require().NoError(err)

	_, err = s.storage.GetMatchSummary(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)

	list, _ := s.storage.ListMatchSummaries(s.ctx)
	s.Empty(list)

	s.NoError(s.storage.DeleteMatchSummary(s.ctx, "match-1"))
}

func (s *StorageSuite) TestConcurrentSaves() {
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.storage.SaveMatchSummary(s.ctx, summary(string(rune('A'+i)), 1))
		}()
	}
	wg.Wait()

	list, err := s.storage.ListMatchSummaries(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 50)
}
