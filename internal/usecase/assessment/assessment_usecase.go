package assessment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/pkg/logger"
	"github.com/soulmatch/soulmatch-backend/internal/repository"
)

// Question is one step of the personality assessment.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

var questions = []Question{
	{
		ID:       1,
		Question: "How do you prefer to spend your ideal weekend?",
		Options: []string{
			"Reading a book in a cozy café",
			"Exploring museums or art galleries",
			"Having deep conversations with friends",
			"Learning something completely new",
		},
	},
	{
		ID:       2,
		Question: "What matters most to you in a conversation?",
		Options: []string{
			"Intellectual depth and philosophical discussions",
			"Emotional connection and vulnerability",
			"Creative ideas and imagination",
			"Shared experiences and storytelling",
		},
	},
	{
		ID:       3,
		Question: "How do you handle disagreements?",
		Options: []string{
			"Seek to understand different perspectives",
			"Focus on finding common ground",
			"Engage in respectful debate",
			"Take time to reflect before responding",
		},
	},
	{
		ID:       4,
		Question: "What energizes you most?",
		Options: []string{
			"Deep one-on-one conversations",
			"Collaborative creative projects",
			"Intellectual challenges and puzzles",
			"Meaningful connections with others",
		},
	},
	{
		ID:       5,
		Question: "In a relationship, what do you value most?",
		Options: []string{
			"Intellectual compatibility and shared interests",
			"Emotional intimacy and understanding",
			"Mutual growth and personal development",
			"Shared values and life goals",
		},
	},
}

type AssessmentUseCase struct {
	profileRepo repository.ProfileRepository
	log         *logger.Logger
}

func NewAssessmentUseCase(profileRepo repository.ProfileRepository, log *logger.Logger) *AssessmentUseCase {
	return &AssessmentUseCase{profileRepo: profileRepo, log: log}
}

// Questions returns the fixed question set in order.
func (uc *AssessmentUseCase) Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Complete records the answers and marks the profile as onboarded.
// Every question must be answered and no unknown question ids are
// accepted. The personality type is a fixed label regardless of the
// answer content; answers are stored but never scored.
func (uc *AssessmentUseCase) Complete(ctx context.Context, answers map[string]string) (*domain.Profile, error) {
	if len(answers) != len(questions) {
		return nil, domain.NewValidationError(
			fmt.Sprintf("expected %d answers, got %d", len(questions), len(answers)))
	}
	for _, q := range questions {
		answer, ok := answers[strconv.Itoa(q.ID)]
		if !ok || answer == "" {
			return nil, domain.NewValidationError(
				fmt.Sprintf("question %d is unanswered", q.ID))
		}
	}

	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	profile.PersonalityType = domain.PersonalityTypeDefault
	profile.Answers = answers
	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	uc.log.Info("assessment completed", "email", profile.Email, "personality_type", profile.PersonalityType)
	return profile, nil
}
