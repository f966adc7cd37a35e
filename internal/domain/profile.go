package domain

// Gender values a user can identify as.
const (
	GenderWoman          = "woman"
	GenderMan            = "man"
	GenderNonBinary      = "non-binary"
	GenderPreferNotToSay = "prefer-not-to-say"
)

// Preference values for who a user wants to be matched with.
const (
	InterestedInWomen     = "women"
	InterestedInMen       = "men"
	InterestedInNonBinary = "non-binary"
	InterestedInEveryone  = "everyone"
)

// PersonalityTypeDefault is the label assigned when the assessment
// completes. Every user receives the same label; answers are stored
// but never scored.
const PersonalityTypeDefault = "Authentic Connector"

// Profile is the current user's identity and preferences. It is stored
// as a single JSON document; PersonalityType is absent until the
// personality assessment has been completed.
type Profile struct {
	Email           string            `json:"email"`
	Name            string            `json:"name"`
	Age             int               `json:"age"`
	Gender          string            `json:"gender"`
	InterestedIn    string            `json:"interestedIn"`
	PersonalityType string            `json:"personalityType,omitempty"`
	Answers         map[string]string `json:"answers,omitempty"`
}

// IsOnboarded reports whether the user has finished the personality
// assessment. Presence of the personality type is the sole signal.
func (p *Profile) IsOnboarded() bool {
	return p.PersonalityType != ""
}
