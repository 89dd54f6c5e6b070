package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/match"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Reporter renders match events either as prose for a person at the
// terminal or as one JSON object per line
type Reporter struct {
	out    io.Writer
	format string
	quiet  bool // Only report completed matches
}

// Ensure Reporter implements match.Reporter
var _ match.Reporter = (*Reporter)(nil)

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer, format string, quiet bool) *Reporter {
	return &Reporter{out: out, format: format, quiet: quiet}
}

// Report writes a single event
func (r *Reporter) Report(ctx context.Context, event model.Event) {
	if r.quiet && event.Type != model.EventMatchComplete {
		return
	}
	if r.format == FormatJSON {
		r.reportJSON(event)
		return
	}
	r.reportText(event)
}

func (r *Reporter) reportText(event model.Event) {
	switch p := event.Payload.(type) {
	case model.MatchStartedPayload:
		fmt.Fprintf(r.out, "%s vs %s\n\n", p.Labels[0], p.Labels[1])

	case model.TurnStartedPayload:
		if p.Kind != model.CombatantHuman {
			return
		}
		header := fmt.Sprintf("%s, it's your turn!", p.Label)
		fmt.Fprintln(r.out, header)
		fmt.Fprintln(r.out, strings.Repeat("=", len(header)))
		RenderBoard(r.out, p.Board)

	case model.StrikeResolvedPayload:
		outcome := "Miss!"
		if p.Impact.Hit {
			outcome = "Hit!"
		}
		if p.Kind == model.CombatantAI {
			fmt.Fprintf(r.out, "%s strikes at %s - %s\n\n", p.Label, p.Impact.Point, outcome)
		} else {
			fmt.Fprintf(r.out, "%s\n\n", outcome)
		}

	case model.ShipSunkPayload:
		fmt.Fprintf(r.out, "%s sank a %s!\n\n", p.Label, KindName(p.Kind))

	case model.MatchCompletePayload:
		r.printSummary(p.Summary)
	}
}

func (r *Reporter) printSummary(s model.MatchSummary) {
	fmt.Fprintf(r.out, "%s wins!\n", s.WinnerLabel)
	fmt.Fprintf(r.out, "%s's hit statistics:\n", s.WinnerLabel)
	fmt.Fprintf(r.out, "%d successful hits out of %d total strikes made, a %.1f%% hit rate\n",
		s.WinnerStats.Hits, s.WinnerStats.Total, s.WinnerStats.HitRate())
}

// eventJSON is the wire form of an event in JSON output
type eventJSON struct {
	Type      model.EventType `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	MatchID   model.MatchID   `json:"match_id"`
	Player    int             `json:"player,omitempty"`
	Data      any             `json:"data,omitempty"`
}

type playerJSON struct {
	Label string              `json:"label"`
	Kind  model.CombatantKind `json:"kind"`
}

type turnJSON struct {
	HalfTurn int                 `json:"half_turn"`
	Label    string              `json:"label"`
	Kind     model.CombatantKind `json:"kind"`
}

type strikeJSON struct {
	Label string `json:"label"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Hit   bool   `json:"hit"`
}

type sunkJSON struct {
	Label string         `json:"label"`
	Ship  model.ShipKind `json:"ship"`
}

func (r *Reporter) reportJSON(event model.Event) {
	out := eventJSON{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		MatchID:   event.MatchID,
		Player:    event.Player,
	}

	switch p := event.Payload.(type) {
	case model.MatchStartedPayload:
		out.Data = []playerJSON{
			{Label: p.Labels[0], Kind: p.Kinds[0]},
			{Label: p.Labels[1], Kind: p.Kinds[1]},
		}
	case model.TurnStartedPayload:
		out.Data = turnJSON{HalfTurn: p.HalfTurn, Label: p.Label, Kind: p.Kind}
	case model.StrikeResolvedPayload:
		out.Data = strikeJSON{Label: p.Label, X: p.Impact.Point.X, Y: p.Impact.Point.Y, Hit: p.Impact.Hit}
	case model.ShipSunkPayload:
		out.Data = sunkJSON{Label: p.Label, Ship: p.Kind}
	case model.MatchCompletePayload:
		out.Data = p.Summary
	}

	data, err := json.Marshal(out)
	if err != nil {
		return
	}
	fmt.Fprintln(r.out, string(data))
}
