package domain

// Message senders.
const (
	SenderUser   = "user"
	SenderMatch  = "match"
	SenderSystem = "system"
)

// Message is one entry in a conversation log. IDs are derived from the
// creation timestamp in milliseconds and are strictly increasing
// within a conversation; Timestamp is an RFC 3339 string.
type Message struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Conversation is the message thread associated with one candidate.
// MatchName, MatchPersonalityType and Compatibility are copies of the
// candidate fields taken at creation time and are not re-synced if the
// catalog changes.
type Conversation struct {
	MatchID              int       `json:"matchId"`
	MatchName            string    `json:"matchName"`
	MatchPersonalityType string    `json:"matchPersonalityType"`
	Compatibility        int       `json:"compatibility"`
	Messages             []Message `json:"messages"`
}

// LastMessage returns the most recent message, or nil for an empty log.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}
