package advice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishap29/Lifestyle-Coach/internal"
)

type fakeGenerator struct {
	text       string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func sleepEntries(n int) []internal.SleepEntry {
	base := time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)
	var entries []internal.SleepEntry
	for i := 0; i < n; i++ {
		entries = append(entries, internal.SleepEntry{
			ID:      "e",
			Date:    base.AddDate(0, 0, i),
			Hours:   7.5,
			Quality: 80,
		})
	}
	return entries
}

func TestComposeGeneralPromptIncludesFactsAndContext(t *testing.T) {
	prompt := ComposeGeneralPrompt("Sleeps 6h, exercises twice a week")

	assert.Contains(t, prompt, "USER CONTEXT: Sleeps 6h, exercises twice a week")
	assert.Contains(t, prompt, "SCIENTIFIC FACTS:")
	for _, fact := range Facts("sleep", "exercise") {
		assert.Contains(t, prompt, fact)
	}
	assert.Contains(t, prompt, "citing at least one scientific source")
}

func TestComposeStructuredPromptKnownIssue(t *testing.T) {
	prompt := ComposeStructuredPrompt(sleepEntries(2), "difficulty_falling_asleep", "Why can't I fall asleep?")

	issue, ok := SleepIssueInfo("difficulty_falling_asleep")
	require.True(t, ok)
	assert.Contains(t, prompt, "Problem: "+issue.Description)
	for _, tip := range issue.Recommendations {
		assert.Contains(t, prompt, "- "+tip)
	}
	assert.Contains(t, prompt, "USER QUESTION:\nWhy can't I fall asleep?")
	assert.NotContains(t, prompt, FallbackAdvice)
}

func TestComposeStructuredPromptUnknownIssueFallsBack(t *testing.T) {
	prompt := ComposeStructuredPrompt(sleepEntries(1), "nonexistent_issue", "Help?")

	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, FallbackAdvice)
	assert.Contains(t, prompt, "Help?")
}

func TestComposeStructuredPromptUsesLastThreeEntries(t *testing.T) {
	entries := sleepEntries(5)
	prompt := ComposeStructuredPrompt(entries, "poor_sleep_quality", "Tired?")

	// Only the last 3 entries appear, formatted one per line.
	assert.NotContains(t, prompt, entries[0].Date.Format("2006-01-02"))
	assert.NotContains(t, prompt, entries[1].Date.Format("2006-01-02"))
	for _, e := range entries[2:] {
		assert.Contains(t, prompt, e.Date.Format("2006-01-02")+": 7.5h, 80/100 quality")
	}
}

func TestGeneralAdviceSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "Sleep more, move more."}
	composer := NewComposer(gen, internal.NopLogger{})

	result := composer.GeneralAdvice(context.Background(), "some context")
	assert.False(t, result.Degraded)
	assert.NoError(t, result.Err)
	assert.Equal(t, "Sleep more, move more.", result.Text)
	assert.Equal(t, "You are an expert health and lifestyle coach.", gen.lastSystem)
	assert.True(t, strings.HasPrefix(gen.lastUser, "You are a professional health coach."))
}

func TestGeneralAdviceDegradesOnServiceError(t *testing.T) {
	cause := &ServiceError{Op: "chat completion", Err: errors.New("quota exceeded")}
	gen := &fakeGenerator{err: cause}
	composer := NewComposer(gen, internal.NopLogger{})

	result := composer.GeneralAdvice(context.Background(), "some context")
	assert.True(t, result.Degraded)
	assert.ErrorIs(t, result.Err, cause)
	assert.Contains(t, result.Text, "AI advice unavailable")
	assert.Contains(t, result.Text, "quota exceeded")
}

func TestCoachingDegradesOnServiceError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	composer := NewComposer(gen, internal.NopLogger{})

	result := composer.Coaching(context.Background(), sleepEntries(3), "poor_sleep_quality", "Why am I tired?")
	assert.True(t, result.Degraded)
	assert.Contains(t, result.Text, "Coaching unavailable")
}

func TestCoachingSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "Stick to a schedule."}
	composer := NewComposer(gen, internal.NopLogger{})

	result := composer.Coaching(context.Background(), sleepEntries(3), "sleeping_too_late", "How do I shift earlier?")
	assert.False(t, result.Degraded)
	assert.Equal(t, "Stick to a schedule.", result.Text)
	assert.Equal(t, "You are an expert in sleep science and coaching.", gen.lastSystem)
}
