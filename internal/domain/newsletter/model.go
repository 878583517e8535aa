package newsletter

import "time"

// Subscription sources. RSVP opt-ins are tagged with the event slug so the
// team can see which event brought a subscriber in.
const (
	SourceDirect       = "direct-signup"
	SourceEventRSVPPfx = "event-rsvp:"
	StatusActive       = "active"
	StatusUnsubscribed = "unsubscribed"
)

// Subscription is one newsletter signup, keyed by normalized email.
type Subscription struct {
	Email        string    `firestore:"email" json:"email"`
	Source       string    `firestore:"source" json:"source"`
	Status       string    `firestore:"status" json:"status"`
	SubscribedAt time.Time `firestore:"subscribedAt" json:"subscribedAt"`
}

// DevSASubscriber is a row in the legacy devsaSubscribers list. Read-only;
// the collection predates the newsletter signup flow.
type DevSASubscriber struct {
	ID           string    `firestore:"id" json:"id"`
	Email        string    `firestore:"email" json:"email"`
	Name         string    `firestore:"name,omitempty" json:"name,omitempty"`
	SubscribedAt time.Time `firestore:"subscribedAt" json:"subscribedAt"`
}

// SubscribeInput represents input for a direct newsletter signup.
type SubscribeInput struct {
	Email string `json:"email"`
}
