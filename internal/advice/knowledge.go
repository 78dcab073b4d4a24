package advice

// Static knowledge used to ground coaching prompts. Facts are flat lists
// keyed by topic; sleep issues are a fixed table of named problems with
// ordered recommendations. Nothing here is personalized.

var knowledgeBase = map[string][]string{
	"sleep": {
		"Adults need 7-9 hours of sleep per night for optimal health (National Sleep Foundation).",
		"Blue light from screens suppresses melatonin production and delays sleep onset (Harvard Medical School).",
		"Caffeine has a half-life of about 5-6 hours and can disrupt sleep when consumed in the afternoon.",
		"A consistent sleep-wake schedule strengthens circadian rhythm and improves sleep quality (CDC).",
		"Bedroom temperatures around 18°C (65°F) are associated with better sleep quality.",
	},
	"exercise": {
		"The WHO recommends at least 150 minutes of moderate aerobic activity per week for adults.",
		"Regular moderate exercise improves slow-wave (deep) sleep (Johns Hopkins Medicine).",
		"Vigorous exercise within 1-2 hours of bedtime can delay sleep onset in some people.",
		"Strength training at least twice a week supports metabolic health and sleep regulation.",
		"Even short walks after meals improve blood glucose control and daytime energy.",
	},
}

// Facts returns the fact strings for the given topics, in topic order.
func Facts(topics ...string) []string {
	var out []string
	for _, t := range topics {
		out = append(out, knowledgeBase[t]...)
	}
	return out
}

type SleepIssue struct {
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

var sleepIssues = map[string]SleepIssue{
	"difficulty_falling_asleep": {
		Description: "Difficulty falling asleep is often caused by stress, late-night screen use, caffeine consumption, or inconsistent sleep routines.",
		Recommendations: []string{
			"Establish a consistent bedtime and wake-up time, even on weekends.",
			"Limit screen use at least 1 hour before bed (blue light affects melatonin production).",
			"Avoid caffeine after 2 PM.",
			"Create a relaxing pre-sleep routine, such as reading or meditation.",
		},
	},
	"frequent_night_wakings": {
		Description: "Waking up frequently during the night can be linked to anxiety, noise disruptions, sleep apnea, or consuming heavy meals before bedtime.",
		Recommendations: []string{
			"Keep your bedroom cool, dark, and quiet.",
			"Avoid heavy meals and alcohol within 3 hours of bedtime.",
			"Consider white noise machines or earplugs if environmental noise is an issue.",
			"If persistent, consult a sleep specialist for possible underlying disorders.",
		},
	},
	"poor_sleep_quality": {
		Description: "Poor sleep quality means not feeling rested even after sleeping enough hours. It may be linked to stress, poor sleep hygiene, or hidden medical conditions.",
		Recommendations: []string{
			"Prioritize deep sleep by sticking to a regular sleep schedule.",
			"Avoid stimulating activities close to bedtime.",
			"Limit naps during the day to no more than 30 minutes.",
			"Ensure your mattress and pillows are supportive and comfortable.",
		},
	},
	"sleeping_too_late": {
		Description: "Sleeping very late (delayed sleep phase) can affect morning alertness, productivity, and mental health.",
		Recommendations: []string{
			"Shift your bedtime earlier by 15-minute increments over several nights.",
			"Expose yourself to bright natural light early in the morning.",
			"Avoid exposure to bright lights and screens at night.",
			"Consider melatonin supplements under a doctor's supervision.",
		},
	},
}

// SleepIssueInfo looks up a named sleep issue by key.
func SleepIssueInfo(key string) (SleepIssue, bool) {
	issue, ok := sleepIssues[key]
	return issue, ok
}
