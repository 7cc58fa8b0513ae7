// Package ai generates short motivational tips from a summary of the
// user's habits. Failures of any kind resolve to a fixed fallback tip
// set; callers never see an error.
package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/sync/semaphore"

	"github.com/habitual-app/habitual/internal/types"
	"github.com/habitual-app/habitual/internal/visibility"
	"github.com/habitual-app/habitual/internal/week"
)

// ModelHaiku is the default model. Tip generation is a simple task;
// a cost-efficient model is plenty.
const ModelHaiku = "claude-3-5-haiku-20241022"

// GetDefaultModel returns the model to use, checking HABITUAL_MODEL
// env var first
func GetDefaultModel() string {
	if model := os.Getenv("HABITUAL_MODEL"); model != "" {
		return model
	}
	return ModelHaiku
}

// maxTips is the number of tips returned per request
const maxTips = 3

// fallbackTips is returned whenever the API cannot be reached or its
// response is unusable. Always exactly maxTips entries.
var fallbackTips = []string{
	"Stack a new habit onto one you already do every day.",
	"Aim for consistency over intensity: small daily wins compound.",
	"Missing one day is noise; missing two starts a trend. Restart now.",
}

// HabitSummary is the narrow view of a habit handed to the model
type HabitSummary struct {
	Title            string
	Category         types.Category
	TotalCompletions int
	LastCompleted    string // ISO date or "Never"
}

// Insights generates motivational tips via the Anthropic API
type Insights struct {
	client         *anthropic.Client
	model          string
	retry          RetryConfig
	circuitBreaker *CircuitBreaker
	concurrencySem *semaphore.Weighted // Limits concurrent API calls
}

// Config holds insight generator configuration
type Config struct {
	APIKey string // Anthropic API key (if empty, reads from ANTHROPIC_API_KEY env var)
	Model  string // Model to use (default: claude-3-5-haiku)
	Retry  RetryConfig
}

// New creates a new insight generator. A missing API key is not an
// error: Generate will serve fallback tips.
func New(cfg *Config) *Insights {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	model := cfg.Model
	if model == "" {
		model = GetDefaultModel()
	}

	retry := cfg.Retry
	if retry.MaxRetries == 0 {
		retry = DefaultRetryConfig()
	}

	ins := &Insights{
		model: model,
		retry: retry,
	}
	if retry.CircuitBreakerEnabled {
		ins.circuitBreaker = NewCircuitBreaker(retry.FailureThreshold, retry.SuccessThreshold, retry.OpenTimeout)
	}
	if retry.MaxConcurrentCalls > 0 {
		ins.concurrencySem = semaphore.NewWeighted(int64(retry.MaxConcurrentCalls))
	}
	if apiKey != "" {
		client := anthropic.NewClient(option.WithAPIKey(apiKey))
		ins.client = &client
	}
	return ins
}

// Generate returns up to maxTips short tips for the given habit
// summaries. It degrades gracefully: any failure (no API key, network,
// quota, unusable response) yields the fallback tips, never an error.
func (ins *Insights) Generate(ctx context.Context, summaries []HabitSummary) []string {
	if ins.client == nil {
		return fallbackTips
	}

	prompt := ins.buildPrompt(summaries)

	var response *anthropic.Message
	err := ins.retryWithBackoff(ctx, "insights", func(attemptCtx context.Context) error {
		resp, apiErr := ins.client.Messages.New(attemptCtx, anthropic.MessageNewParams{
			Model:     anthropic.Model(ins.model),
			MaxTokens: 512,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		if apiErr != nil {
			return apiErr
		}
		response = resp
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: insight generation failed, using fallback tips: %v\n", err)
		return fallbackTips
	}

	// Extract the text content from the response
	var responseText string
	for _, block := range response.Content {
		if block.Type == "text" {
			responseText += block.Text
		}
	}

	tips := ParseTips(responseText)
	if len(tips) == 0 {
		fmt.Fprintf(os.Stderr, "warning: insight response had no usable lines, using fallback tips\n")
		return fallbackTips
	}
	return tips
}

func (ins *Insights) buildPrompt(summaries []HabitSummary) string {
	var b strings.Builder
	b.WriteString("You are a habit coach. Given the user's habits below, ")
	b.WriteString("reply with exactly 3 short, specific, encouraging tips, ")
	b.WriteString("one per line, no preamble.\n\nHabits:\n")
	for _, s := range summaries {
		last := s.LastCompleted
		if last == "" {
			last = "Never"
		}
		fmt.Fprintf(&b, "- %s (%s): %d completions, last on %s\n",
			s.Title, s.Category, s.TotalCompletions, last)
	}
	if len(summaries) == 0 {
		b.WriteString("(none yet)\n")
	}
	return b.String()
}

// BuildSummaries derives the per-habit summary rows for the current
// week's visible habits. Only the visibility filter's output reaches
// the model.
func BuildSummaries(c types.Collection, w week.Window) []HabitSummary {
	var out []HabitSummary
	for _, kind := range []types.Kind{types.KindHabit, types.KindReminder} {
		for _, h := range visibility.Visible(c, w, kind) {
			s := HabitSummary{
				Title:            h.Title,
				Category:         h.Category,
				TotalCompletions: len(h.CompletedDates),
				LastCompleted:    h.CompletedDates.Latest(),
			}
			if s.LastCompleted == "" {
				s.LastCompleted = "Never"
			}
			out = append(out, s)
		}
	}
	return out
}

// FallbackTips returns the fixed tip set used when generation fails
func FallbackTips() []string {
	out := make([]string, len(fallbackTips))
	copy(out, fallbackTips)
	return out
}
