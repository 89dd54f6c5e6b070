package storage

import (
	"context"

	"github.com/mcoot/battleship-go/internal/model"
)

// Storage defines the interface for the match history kept during a session
type Storage interface {
	// Match summary operations
	SaveMatchSummary(ctx context.Context, summary *model.MatchSummary) error
	GetMatchSummary(ctx context.Context, id model.MatchID) (*model.MatchSummary, error)
	ListMatchSummaries(ctx context.Context) ([]*model.MatchSummary, error)
	DeleteMatchSummary(ctx context.Context, id model.MatchID) error
}
