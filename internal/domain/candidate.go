package domain

// Candidate is a static catalog entry representing a prospective
// match. Candidates are fixed for the process lifetime and never
// persisted; compatibility is a precomputed score, not a live value.
type Candidate struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Age                  int      `json:"age"`
	Gender               string   `json:"gender"`
	Compatibility        int      `json:"compatibility"`
	PersonalityType      string   `json:"personalityType"`
	Interests            []string `json:"interests"`
	Bio                  string   `json:"bio"`
	RevealLevel          int      `json:"revealLevel"`
	ConversationStarters []string `json:"conversationStarters"`
}
