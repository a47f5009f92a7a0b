package domain

import "context"

// QuestionType is either a 1-10 rating with labeled endpoints or a yes/no.
type QuestionType string

const (
	QuestionRating  QuestionType = "rating"
	QuestionBoolean QuestionType = "boolean"
)

type QuestionScale struct {
	Min    int               `json:"min"`
	Max    int               `json:"max"`
	Labels map[string]string `json:"labels"`
}

// ReflectionQuestion is one entry of the static evening-reflection
// catalogue. The catalogue is immutable and defined in code.
type ReflectionQuestion struct {
	ID       string         `json:"id"`
	Metric   string         `json:"metric"`
	Type     QuestionType   `json:"type"`
	Question string         `json:"question"`
	Scale    *QuestionScale `json:"scale,omitempty"`
}

// BaseQuestions is served to users with no health-score history yet.
var BaseQuestions = []ReflectionQuestion{
	{
		ID:       "q_heaviness",
		Metric:   "heaviness",
		Type:     QuestionRating,
		Question: "How heavy did your meals feel today?",
		Scale:    &QuestionScale{Min: 1, Max: 10, Labels: map[string]string{"1": "Very light", "10": "Very heavy"}},
	},
	{
		ID:       "q_energy",
		Metric:   "energy",
		Type:     QuestionRating,
		Question: "How was your overall energy today?",
		Scale:    &QuestionScale{Min: 1, Max: 10, Labels: map[string]string{"1": "Very low", "10": "Very high"}},
	},
	{
		ID:       "q_balance",
		Metric:   "balance",
		Type:     QuestionBoolean,
		Question: "Did your meals feel balanced today?",
	},
	{
		ID:       "q_digestion",
		Metric:   "digestion",
		Type:     QuestionRating,
		Question: "How comfortable did you feel after eating?",
		Scale:    &QuestionScale{Min: 1, Max: 10, Labels: map[string]string{"1": "Uncomfortable", "10": "Very comfortable"}},
	},
	{
		ID:       "q_consistency",
		Metric:   "consistency",
		Type:     QuestionBoolean,
		Question: "Did you eat at roughly regular times today?",
	},
	{
		ID:       "q_mindfulness",
		Metric:   "mindfulness",
		Type:     QuestionRating,
		Question: "How aware were you while eating today?",
		Scale:    &QuestionScale{Min: 1, Max: 10, Labels: map[string]string{"1": "Very distracted", "10": "Very present"}},
	},
}

// ReflectionTimeRepository is the per-user preferred reflection time,
// persisted as a single whole-file JSON map. Last write wins.
type ReflectionTimeRepository interface {
	Get(ctx context.Context, userID string) (string, bool, error)
	Set(ctx context.Context, userID string, timeStr string) error
}

// QuestionSet is the request-questions payload. Type is "base" for
// first-time users and "custom" once health-score history exists (custom
// generation itself is a placeholder upstream).
type QuestionSet struct {
	Type      string
	Questions []ReflectionQuestion
	Message   string
}

type ReflectionUsecase interface {
	GetTime(ctx context.Context, userID string) (string, bool, error)
	SetTime(ctx context.Context, userID string, timeStr string) error
	Questions(ctx context.Context, userID string) (*QuestionSet, error)
}
