package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mcoot/battleship-go/internal/console"
	"github.com/mcoot/battleship-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == console.FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, model.ErrInputClosed):
		msg = "input closed before the match finished"
	case errors.Is(err, context.Canceled):
		msg = "interrupted"
	}
	if o.format == console.FormatJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": msg,
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", msg)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == console.FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SimulationResult:
		o.printSimulation(v)
	case []StrategyInfo:
		o.printStrategies(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// StrategyInfo describes a targeting strategy
type StrategyInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Default     bool   `json:"default"`
}

// SimulationResult aggregates a batch of AI vs AI matches
type SimulationResult struct {
	Strategy      string  `json:"strategy"`
	Seed          uint64  `json:"seed,omitempty"`
	Games         int     `json:"games"`
	PlayerOneWins int     `json:"player_1_wins"`
	PlayerTwoWins int     `json:"player_2_wins"`
	AvgHalfTurns  float64 `json:"avg_half_turns"`
	MinHalfTurns  int     `json:"min_half_turns"`
	MaxHalfTurns  int     `json:"max_half_turns"`
	AvgHitRate    float64 `json:"avg_winner_hit_rate"`
}

func (o *Output) printStrategies(strategies []StrategyInfo) {
	for _, s := range strategies {
		defaultStr := ""
		if s.Default {
			defaultStr = " [default]"
		}
		fmt.Fprintf(o.out, "%s - %s%s\n", s.Name, s.DisplayName, defaultStr)
	}
}

func (o *Output) printSimulation(r SimulationResult) {
	fmt.Fprintf(o.out, "Strategy: %s\n", model.TargetingStrategyDisplayName(r.Strategy))
	if r.Seed != 0 {
		fmt.Fprintf(o.out, "Seed: %d\n", r.Seed)
	}
	fmt.Fprintf(o.out, "Games: %d\n", r.Games)
	fmt.Fprintf(o.out, "Player 1 wins: %d\n", r.PlayerOneWins)
	fmt.Fprintf(o.out, "Player 2 wins: %d\n", r.PlayerTwoWins)
	fmt.Fprintf(o.out, "Half-turns: avg %.1f, min %d, max %d\n", r.AvgHalfTurns, r.MinHalfTurns, r.MaxHalfTurns)
	fmt.Fprintf(o.out, "Winner hit rate: %.1f%%\n", r.AvgHitRate)
}
