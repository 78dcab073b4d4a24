package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/mishap29/Lifestyle-Coach/internal"
)

const (
	generalSystemPrompt  = "You are an expert health and lifestyle coach."
	coachingSystemPrompt = "You are an expert in sleep science and coaching."

	// FallbackAdvice marks a structured prompt built for an unknown issue key.
	FallbackAdvice = "No specific structured advice available."

	adviceTemperature = 0.5
	adviceMaxTokens   = 300

	// Coaching prompts include only the most recent sleep entries.
	recentEntryCount = 3
)

// Result is what the advice layer always hands back: displayable text, plus a
// degraded flag and the underlying cause when generation failed. Advice must
// never crash the logging/tracking flow, so failures become text, but callers
// can still log Err separately from what they render.
type Result struct {
	Text     string `json:"text"`
	Degraded bool   `json:"degraded"`
	Err      error  `json:"-"`
}

// Composer assembles coaching prompts from logs, the static knowledge base and
// the user's question, and delegates generation to the injected Generator.
type Composer struct {
	gen    Generator
	logger internal.Logger
}

func NewComposer(gen Generator, logger internal.Logger) *Composer {
	return &Composer{gen: gen, logger: logger}
}

// ComposeGeneralPrompt combines the sleep and exercise fact lists with the
// caller-supplied context into a single health-coach prompt.
func ComposeGeneralPrompt(userContext string) string {
	facts := strings.Join(Facts("sleep", "exercise"), "\n")
	return "You are a professional health coach. Base your advice on scientific facts.\n" +
		"USER CONTEXT: " + userContext + "\n" +
		"SCIENTIFIC FACTS:\n" + facts + "\n\n" +
		"Give a detailed but concise advice paragraph, citing at least one scientific source."
}

// ComposeStructuredPrompt builds a sleep-coaching prompt from the last few
// sleep entries, the named sleep issue and the user's question. Unknown issue
// keys fall back to a marker instead of failing.
func ComposeStructuredPrompt(entries []internal.SleepEntry, issueKey, question string) string {
	recent := entries
	if len(recent) > recentEntryCount {
		recent = recent[len(recent)-recentEntryCount:]
	}
	lines := make([]string, 0, len(recent))
	for _, e := range recent {
		lines = append(lines, fmt.Sprintf("%s: %gh, %d/100 quality", e.Date.Format("2006-01-02"), e.Hours, e.Quality))
	}
	context := strings.Join(lines, "\n")

	structured := FallbackAdvice
	if issue, ok := SleepIssueInfo(issueKey); ok {
		var b strings.Builder
		b.WriteString("Problem: " + issue.Description + "\n")
		b.WriteString("Recommended actions:")
		for _, tip := range issue.Recommendations {
			b.WriteString("\n- " + tip)
		}
		structured = b.String()
	}

	return "You are a professional sleep coach.\n" +
		"USER CONTEXT:\n" + context + "\n\n" +
		"KNOWN SLEEP ISSUE:\n" + structured + "\n\n" +
		"USER QUESTION:\n" + question + "\n\n" +
		"Respond with specific, actionable, compassionate advice. Cite the structured advice where helpful."
}

// GeneralAdvice requests coaching advice grounded in the static fact base.
func (c *Composer) GeneralAdvice(ctx context.Context, userContext string) Result {
	prompt := ComposeGeneralPrompt(userContext)
	text, err := c.gen.Generate(ctx, generalSystemPrompt, prompt, adviceTemperature, adviceMaxTokens)
	if err != nil {
		c.logger.Warnf("general advice degraded: %v", err)
		return Result{Text: "AI advice unavailable: " + err.Error(), Degraded: true, Err: err}
	}
	return Result{Text: text}
}

// Coaching requests issue-specific sleep coaching from recent entries.
func (c *Composer) Coaching(ctx context.Context, entries []internal.SleepEntry, issueKey, question string) Result {
	prompt := ComposeStructuredPrompt(entries, issueKey, question)
	text, err := c.gen.Generate(ctx, coachingSystemPrompt, prompt, adviceTemperature, adviceMaxTokens)
	if err != nil {
		c.logger.Warnf("coaching degraded: %v", err)
		return Result{Text: "Coaching unavailable: " + err.Error(), Degraded: true, Err: err}
	}
	return Result{Text: text}
}
