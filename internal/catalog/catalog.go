// Package catalog holds the fixed set of prospective matches. The
// catalog is static sample data: compatibility scores and personality
// labels are precomputed constants, not the output of a matching
// engine.
package catalog

import (
	"github.com/soulmatch/soulmatch-backend/internal/domain"
)

var candidates = []domain.Candidate{
	{
		ID:              1,
		Name:            "Alex",
		Age:             28,
		Gender:          domain.GenderWoman,
		Compatibility:   94,
		PersonalityType: "Thoughtful Conversationalist",
		Interests:       []string{"Philosophy", "Literature", "Coffee Culture"},
		Bio:             "I believe the best connections happen when minds meet before eyes do. Love discussing everything from existentialism to the perfect brewing method.",
		RevealLevel:     0,
		ConversationStarters: []string{
			"What book changed your perspective on life?",
			"If you could have dinner with any philosopher, who would it be?",
		},
	},
	{
		ID:              2,
		Name:            "Sam",
		Age:             25,
		Gender:          domain.GenderNonBinary,
		Compatibility:   89,
		PersonalityType: "Creative Empath",
		Interests:       []string{"Art", "Psychology", "Music"},
		Bio:             "Artist at heart, psychology enthusiast by mind. I'm drawn to people who see beauty in ideas and aren't afraid to explore the depths of human nature.",
		RevealLevel:     0,
		ConversationStarters: []string{
			"What's a creative project that's been calling to you?",
			"How do you think art influences our emotions?",
		},
	},
	{
		ID:              3,
		Name:            "Jordan",
		Age:             30,
		Gender:          domain.GenderMan,
		Compatibility:   87,
		PersonalityType: "Intellectual Explorer",
		Interests:       []string{"Science", "Travel", "Documentaries"},
		Bio:             "Curious about everything, passionate about learning. I find intelligence incredibly attractive and love people who can teach me something new.",
		RevealLevel:     1,
		ConversationStarters: []string{
			"What's the most fascinating thing you've learned recently?",
			"If you could explore any scientific mystery, what would it be?",
		},
	},
	{
		ID:              4,
		Name:            "Morgan",
		Age:             26,
		Gender:          domain.GenderWoman,
		Compatibility:   91,
		PersonalityType: "Deep Thinker",
		Interests:       []string{"Poetry", "Meditation", "Sociology"},
		Bio:             "I find beauty in quiet moments and profound conversations. Looking for someone who appreciates the subtle complexities of human connection.",
		RevealLevel:     0,
		ConversationStarters: []string{
			"What's a moment of quiet beauty that stayed with you?",
			"How do you think we can better understand each other as humans?",
		},
	},
	{
		ID:              5,
		Name:            "River",
		Age:             29,
		Gender:          domain.GenderNonBinary,
		Compatibility:   85,
		PersonalityType: "Philosophical Dreamer",
		Interests:       []string{"Astronomy", "Ethics", "World Cultures"},
		Bio:             "Fascinated by the big questions and small wonders. I believe every person has a universe of stories worth exploring.",
		RevealLevel:     0,
		ConversationStarters: []string{
			"What question about existence keeps you awake at night?",
			"If you could understand any culture deeply, which would you choose?",
		},
	},
	{
		ID:              6,
		Name:            "Casey",
		Age:             27,
		Gender:          domain.GenderMan,
		Compatibility:   88,
		PersonalityType: "Empathetic Analyst",
		Interests:       []string{"History", "Social Justice", "Board Games"},
		Bio:             "I love understanding how the past shapes our present and how we can build a better future together. Deep conversations over coffee are my love language.",
		RevealLevel:     0,
		ConversationStarters: []string{
			"What historical period do you think we can learn most from?",
			"How do you think we can make the world more compassionate?",
		},
	},
}

// All returns every candidate in catalog order.
func All() []domain.Candidate {
	out := make([]domain.Candidate, len(candidates))
	copy(out, candidates)
	return out
}

// GetByID returns the candidate with the given id.
func GetByID(id int) (*domain.Candidate, error) {
	for i := range candidates {
		if candidates[i].ID == id {
			c := candidates[i]
			return &c, nil
		}
	}
	return nil, domain.ErrCandidateNotFound
}

// Filter returns the candidates matching the user's stated preference,
// preserving catalog order. Unknown preference values yield an empty
// result.
func Filter(all []domain.Candidate, interestedIn string) []domain.Candidate {
	filtered := make([]domain.Candidate, 0, len(all))
	for _, c := range all {
		switch interestedIn {
		case domain.InterestedInEveryone:
		case domain.InterestedInWomen:
			if c.Gender != domain.GenderWoman {
				continue
			}
		case domain.InterestedInMen:
			if c.Gender != domain.GenderMan {
				continue
			}
		case domain.InterestedInNonBinary:
			if c.Gender != domain.GenderNonBinary {
				continue
			}
		default:
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}
