package chat

// Commit outcomes reported to observers.
const (
	ResultSent     = "sent"
	ResultDeclined = "declined"
)

// SentMessage is a committed draft as recorded in the transcript.
type SentMessage struct {
	Text string `json:"text"`
	Ts   int64  `json:"ts"` // unix timestamp of the commit
}
