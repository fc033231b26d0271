package services

import "math"

// QuizQuestion is one onboarding quiz question
type QuizQuestion struct {
	ID      string            `json:"id"`
	Text    string            `json:"text"`
	Options map[string]string `json:"options"`
}

// QuizQuestions is the fixed onboarding quiz
var QuizQuestions = []QuizQuestion{
	{
		ID:   "q1",
		Text: "A perfect date night is:",
		Options: map[string]string{
			"a": "A cozy night in",
			"b": "A fancy dinner out",
			"c": "A spontaneous adventure",
			"d": "A lively party",
		},
	},
	{
		ID:   "q2",
		Text: "I recharge my social battery by:",
		Options: map[string]string{
			"a": "Being with a large group of friends",
			"b": "Having a deep one-on-one conversation",
			"c": "Spending quality time alone",
			"d": "Exploring a new hobby",
		},
	},
	{
		ID:   "q3",
		Text: "In a relationship, I value this the most:",
		Options: map[string]string{
			"a": "Honesty and trust",
			"b": "Shared humor and fun",
			"c": "Intellectual stimulation",
			"d": "Emotional support",
		},
	},
}

// CompatibilityScore computes the quiz-answer overlap between two users as a
// 0-100 score. Missing answers on either side count as disagreement. The
// function is symmetric in its arguments.
func CompatibilityScore(answersA, answersB map[string]string) int {
	total := len(QuizQuestions)
	if total == 0 {
		return 0
	}
	common := 0
	for _, question := range QuizQuestions {
		a, okA := answersA[question.ID]
		b, okB := answersB[question.ID]
		if okA && okB && a == b {
			common++
		}
	}
	return int(math.Round(float64(common) / float64(total) * 100))
}
