package events

var ProfileUpdatedTopic = "ProfileUpdatedEvent"

type ProfileUpdated struct {
	ProfileID string
	Skills    int
}
