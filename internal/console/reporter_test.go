package console_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/console"
	"github.com/mcoot/battleship-go/internal/model"
)

type ReporterSuite struct {
	suite.Suite
	ctx     context.Context
	out     *bytes.Buffer
	summary model.MatchSummary
}

func TestReporterSuite(t *testing.T) {
	suite.Run(t, new(ReporterSuite))
}

func (s *ReporterSuite) SetupTest() {
	s.ctx = context.Background()
	s.out = &bytes.Buffer{}
	s.summary = model.MatchSummary{
		ID:          "match-1",
		Winner:      2,
		WinnerLabel: "AI Player 2",
		WinnerKind:  model.CombatantAI,
		WinnerStats: model.HitStats{Hits: 15, Total: 40},
		HalfTurns:   79,
	}
}

func (s *ReporterSuite) event(t model.EventType, player int, payload any) model.Event {
	return model.Event{
		Type:      t,
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MatchID:   "match-1",
		Player:    player,
		Payload:   payload,
	}
}

func (s *ReporterSuite) TestTextHumanTurnShowsBoard() {
	r := console.NewReporter(s.out, console.FormatText, false)
	r.Report(s.ctx, s.event(model.EventTurnStarted, 1, model.TurnStartedPayload{
		HalfTurn: 1, Label: "Player 1", Kind: model.CombatantHuman, Board: model.NewBoard(nil),
	}))

	output := s.out.String()
	s.Contains(output, "Player 1, it's your turn!")
	s.Contains(output, "Impacts")
	s.Contains(output, "Your ships")
}

func (s *ReporterSuite) TestTextAITurnIsSilent() {
	r := console.NewReporter(s.out, console.FormatText, false)
	r.Report(s.ctx, s.event(model.EventTurnStarted, 2, model.TurnStartedPayload{
		HalfTurn: 2, Label: "AI Player 2", Kind: model.CombatantAI, Board: model.NewBoard(nil),
	}))
	s.Empty(s.out.String())
}

func (s *ReporterSuite) TestTextStrikes() {
	r := console.NewReporter(s.out, console.FormatText, false)
	r.Report(s.ctx, s.event(model.EventStrikeResolved, 1, model.StrikeResolvedPayload{
		Label: "Player 1", Kind: model.CombatantHuman,
		Impact: model.Impact{Point: model.Point{X: 1, Y: 1}, Hit: true},
	}))
	r.Report(s.ctx, s.event(model.EventStrikeResolved, 2, model.StrikeResolvedPayload{
		Label: "AI Player 2", Kind: model.CombatantAI,
		Impact: model.Impact{Point: model.Point{X: 4, Y: 6}, Hit: false},
	}))
	r.Report(s.ctx, s.event(model.EventShipSunk, 1, model.ShipSunkPayload{
		Label: "Player 1", Kind: model.Destroyer,
	}))

	s.Equal("Hit!\n\nAI Player 2 strikes at (4,6) - Miss!\n\nPlayer 1 sank a Destroyer!\n\n", s.out.String())
}

func (s *ReporterSuite) TestTextSummary() {
	r := console.NewReporter(s.out, console.FormatText, false)
	r.Report(s.ctx, s.event(model.EventMatchComplete, 2, model.MatchCompletePayload{Summary: s.summary}))

	output := s.out.String()
	s.Contains(output, "AI Player 2 wins!")
	s.Contains(output, "15 successful hits out of 40 total strikes made, a 37.5% hit rate")
}

func (s *ReporterSuite) TestQuietOnlyReportsCompletion() {
	r := console.NewReporter(s.out, console.FormatText, true)
	r.Report(s.ctx, s.event(model.EventMatchStarted, 0, model.MatchStartedPayload{}))
	r.Report(s.ctx, s.event(model.EventStrikeResolved, 1, model.StrikeResolvedPayload{}))
	s.Empty(s.out.String())

	r.Report(s.ctx, s.event(model.EventMatchComplete, 2, model.MatchCompletePayload{Summary: s.summary}))
	s.Contains(s.out.String(), "wins!")
}

func (s *ReporterSuite) TestJSONLines() {
	r := console.NewReporter(s.out, console.FormatJSON, false)
	r.Report(s.ctx, s.event(model.EventStrikeResolved, 2, model.StrikeResolvedPayload{
		Label: "AI Player 2", Kind: model.CombatantAI,
		Impact: model.Impact{Point: model.Point{X: 4, Y: 6}, Hit: true},
	}))
	r.Report(s.ctx, s.event(model.EventMatchComplete, 2, model.MatchCompletePayload{Summary: s.summary}))

	lines := strings.Split(strings.TrimSpace(s.out.String()), "\n")
	s.Require().Len(lines, 2)

	var strike struct {
		Type    string `json:"type"`
		MatchID string `json:"match_id"`
		Player  int    `json:"player"`
		Data    struct {
			X   int  `json:"x"`
			Y   int  `json:"y"`
			Hit bool `json:"hit"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal([]byte(lines[0]), &strike))
	s.Equal("strike_resolved", strike.Type)
	s.Equal("match-1", strike.MatchID)
	s.Equal(2, strike.Player)
	s.Equal(4, strike.Data.X)
	s.True(strike.Data.Hit)

	var complete struct {
		Data model.MatchSummary `json:"data"`
	}
	s.Require().NoError(json.Unmarshal([]byte(lines[1]), &complete))
	s.Equal(s.summary.WinnerStats, complete.Data.WinnerStats)
}
