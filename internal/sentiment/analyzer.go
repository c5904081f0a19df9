// Package sentiment turns a market data snapshot into a bounded sentiment
// score in [-1, 1] using an LLM backend. From the strategy core's point of
// view an Analyzer is just another score function; failures degrade to a
// neutral contribution upstream.
package sentiment

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/quantrell/tradewind/internal/core"
)

// Snapshot is the slice of a market data record an analyzer sees.
type Snapshot struct {
	Symbol string
	Price  float64
	Volume float64
	High   float64
	Low    float64
	Time   time.Time
}

// SnapshotFrom extracts an analyzer snapshot from a market data record.
func SnapshotFrom(m core.MarketData) Snapshot {
	return Snapshot{
		Symbol: m.Symbol,
		Price:  m.Price,
		Volume: m.Volume,
		High:   m.High,
		Low:    m.Low,
		Time:   m.Timestamp,
	}
}

// Analyzer scores market sentiment for one snapshot.
type Analyzer interface {
	Name() string
	Score(ctx context.Context, snap Snapshot) (float64, error)
}

// SystemPrompt instructs the model to behave as a scoring function.
const SystemPrompt = "You are a market sentiment analyzer. " +
	"Respond with a single line of the form 'score: <value>' where <value> " +
	"is between -1 (extremely bearish) and 1 (extremely bullish)."

// Prompt formats a snapshot into the user prompt shared by all backends.
func Prompt(snap Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze the market sentiment for %s:\n", snap.Symbol)
	fmt.Fprintf(&sb, "Price: %.4f\n", snap.Price)
	if snap.Volume > 0 {
		fmt.Fprintf(&sb, "Volume: %.0f\n", snap.Volume)
	}
	if snap.High > 0 {
		fmt.Fprintf(&sb, "High: %.4f\n", snap.High)
	}
	if snap.Low > 0 {
		fmt.Fprintf(&sb, "Low: %.4f\n", snap.Low)
	}
	fmt.Fprintf(&sb, "Time: %s\n\n", snap.Time.Format(time.RFC3339))
	sb.WriteString("Provide a sentiment score between -1 (extremely bearish) and 1 (extremely bullish).")
	return sb.String()
}

var numberPattern = regexp.MustCompile(`[-+]?\d*\.?\d+`)

// ParseScore extracts a sentiment score from a model reply. It prefers
// lines mentioning "score" or "sentiment", falls back to the first number
// anywhere in the reply, and clamps the result to [-1, 1].
func ParseScore(content string) (float64, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, core.WrapError(core.ErrSentimentFailed, fmt.Errorf("empty reply"))
	}

	for _, line := range strings.Split(content, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "score") && !strings.Contains(lower, "sentiment") {
			continue
		}
		if m := numberPattern.FindString(line); m != "" {
			if v, err := strconv.ParseFloat(m, 64); err == nil {
				return core.ClampSignal(v), nil
			}
		}
	}

	if m := numberPattern.FindString(content); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			return core.ClampSignal(v), nil
		}
	}

	return 0, core.WrapError(core.ErrSentimentFailed, fmt.Errorf("no score in reply: %.80q", content))
}
