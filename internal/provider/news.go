package provider

import (
	"context"
	"strings"

	"github.com/quantrell/tradewind/internal/core"
	"github.com/quantrell/tradewind/internal/extdata"
)

var bullishWords = []string{
	"rally", "surge", "gain", "beat", "record", "upgrade", "strong",
	"growth", "jump", "soar", "boost", "recover",
}

var bearishWords = []string{
	"crash", "plunge", "fall", "drop", "miss", "downgrade", "weak",
	"fear", "loss", "slump", "decline", "drag",
}

// News contributes a bounded score from recent headline tone for the
// record's symbol. Tone is a simple keyword count; the aggregate is
// mapped through fixed thresholds so a handful of headlines can never
// dominate the signal.
type News struct {
	client extdata.NewsClient
}

// NewNews wraps a news client.
func NewNews(client extdata.NewsClient) *News {
	return &News{client: client}
}

func (n *News) Name() string { return "news" }

func (n *News) Score(ctx context.Context, data core.MarketData) (float64, error) {
	headlines, err := n.client.Headlines(ctx, data.Symbol)
	if err != nil {
		return 0, core.WrapError(core.ErrProviderFailed, err)
	}
	if len(headlines) == 0 {
		return 0, nil
	}

	var sum float64
	for _, h := range headlines {
		sum += headlineTone(h.Title + " " + h.Description)
	}
	tone := sum / float64(len(headlines))

	switch {
	case tone <= -0.4:
		return -0.3, nil
	case tone >= 0.4:
		return 0.3, nil
	default:
		return core.ClampSignal(tone * 0.5), nil
	}
}

// headlineTone returns the net keyword tone of one headline in [-1, 1].
func headlineTone(text string) float64 {
	text = strings.ToLower(text)

	var bull, bear int
	for _, w := range bullishWords {
		if strings.Contains(text, w) {
			bull++
		}
	}
	for _, w := range bearishWords {
		if strings.Contains(text, w) {
			bear++
		}
	}

	if bull+bear == 0 {
		return 0
	}
	return float64(bull-bear) / float64(bull+bear)
}
