// Package content serves the storefront's fixed news feed and trivia game.
// Pure mock data, mirroring the simulation-only scope of the rest of the
// non-catalog features.
package content

import (
	"errors"
	"time"
)

type NewsItem struct {
	ID        string    `json:"id"`
	Headline  string    `json:"headline"`
	Body      string    `json:"body"`
	Published time.Time `json:"published"`
}

type TriviaQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	answer  int
}

var ErrUnknownQuestion = errors.New("unknown trivia question")

func News() []NewsItem {
	return []NewsItem{
		{
			ID:        "news-ballot-drop",
			Headline:  "New ballot drop boxes arrive downtown",
			Body:      "Three new drop boxes opened this week, each within a ten minute walk of a bus line.",
			Published: time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "news-volunteer-drive",
			Headline:  "Volunteer drive passes five hundred sign-ups",
			Body:      "Canvassing shifts for the fall are nearly full; phone banking still has openings.",
			Published: time.Date(2026, time.August, 18, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:        "news-merch-restock",
			Headline:  "Yard signs restocked after summer rush",
			Body:      "The print shop caught up over the weekend. Orders placed in July ship this week.",
			Published: time.Date(2026, time.August, 11, 8, 15, 0, 0, time.UTC),
		},
	}
}

func Trivia() []TriviaQuestion {
	return []TriviaQuestion{
		{
			ID:      "trivia-amendments",
			Prompt:  "How many amendments does the U.S. Constitution have?",
			Choices: []string{"10", "21", "27", "33"},
			answer:  2,
		},
		{
			ID:      "trivia-turnout",
			Prompt:  "Which election type usually has the lowest turnout?",
			Choices: []string{"Presidential", "Midterm", "Local and municipal", "Runoff"},
			answer:  2,
		},
		{
			ID:      "trivia-suffrage",
			Prompt:  "Which amendment extended the vote to women nationwide?",
			Choices: []string{"15th", "19th", "24th", "26th"},
			answer:  1,
		},
	}
}

// CheckAnswer reports whether the choice index answers the question.
func CheckAnswer(questionID string, choice int) (bool, error) {
	for _, q := range Trivia() {
		if q.ID == questionID {
			return choice == q.answer, nil
		}
	}
	return false, ErrUnknownQuestion
}
