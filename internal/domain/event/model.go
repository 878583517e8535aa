package event

import (
	"strings"
	"time"
)

// Event statuses gate visibility: a draft never appears on public pages.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidEventTypes are the accepted event formats.
var ValidEventTypes = []string{"in-person", "hybrid", "virtual"}

func IsValidEventType(t string) bool {
	if t == "" {
		return true // empty is valid, defaults to "in-person"
	}
	for _, v := range ValidEventTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Event is a scheduled community gathering, stored in the events collection.
type Event struct {
	ID          string    `firestore:"id" json:"id"`
	Slug        string    `firestore:"slug" json:"slug"`
	Title       string    `firestore:"title" json:"title"`
	Description string    `firestore:"description,omitempty" json:"description,omitempty"`
	Date        time.Time `firestore:"date" json:"date"`
	// EndTime is optional; zero means the event runs the default two hours.
	EndTime time.Time `firestore:"endTime,omitempty" json:"endTime,omitempty"`

	// CommunityIDs is an ordered list of host communities. Co-hosted events
	// list several. A token with no matching community is a one-off "custom"
	// host; CommunityName carries its display name.
	CommunityIDs  []string `firestore:"communityIds" json:"communityIds"`
	CommunityName string   `firestore:"communityName,omitempty" json:"communityName,omitempty"`

	Status      string `firestore:"status" json:"status"`
	EventType   string `firestore:"eventType" json:"eventType"`
	Location    string `firestore:"location,omitempty" json:"location,omitempty"`
	ImageURL    string `firestore:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	RSVPEnabled bool   `firestore:"rsvpEnabled" json:"rsvpEnabled"`

	// IsStatic marks hard-coded seed data; the API rejects every mutation.
	IsStatic bool `firestore:"isStatic" json:"isStatic"`

	CreatedBy string    `firestore:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// CreateEventInput represents input for creating an event.
type CreateEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`              // RFC 3339
	EndTime     string `json:"endTime,omitempty"` // RFC 3339

	// CommunityIDs is the host list. CommunityID is the legacy comma-joined
	// form still sent by older dashboard builds; it is split and appended.
	CommunityIDs  []string `json:"communityIds,omitempty"`
	CommunityID   string   `json:"communityId,omitempty"`
	CommunityName string   `json:"communityName,omitempty"`

	Status      string `json:"status,omitempty"`
	EventType   string `json:"eventType,omitempty"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	RSVPEnabled bool   `json:"rsvpEnabled,omitempty"`
}

func (in *CreateEventInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)
	in.EndTime = strings.TrimSpace(in.EndTime)
	in.CommunityID = strings.TrimSpace(in.CommunityID)
	in.CommunityName = strings.TrimSpace(in.CommunityName)
	in.Status = strings.TrimSpace(in.Status)
	in.EventType = strings.TrimSpace(in.EventType)
	in.Location = strings.TrimSpace(in.Location)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
}

// HostIDs merges the list form and the legacy comma-joined form.
func (in CreateEventInput) HostIDs() []string {
	ids := append([]string{}, in.CommunityIDs...)
	ids = append(ids, SplitCommunityIDs(in.CommunityID)...)
	return dedupeTokens(ids)
}

// UpdateEventInput represents input for updating an event.
type UpdateEventInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`

	CommunityIDs  *[]string `json:"communityIds,omitempty"`
	CommunityID   *string   `json:"communityId,omitempty"`
	CommunityName *string   `json:"communityName,omitempty"`

	Status      *string `json:"status,omitempty"`
	EventType   *string `json:"eventType,omitempty"`
	Location    *string `json:"location,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	RSVPEnabled *bool   `json:"rsvpEnabled,omitempty"`
}

func (in *UpdateEventInput) Trim() {
	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
	if in.Date != nil {
		*in.Date = strings.TrimSpace(*in.Date)
	}
	if in.EndTime != nil {
		*in.EndTime = strings.TrimSpace(*in.EndTime)
	}
	if in.CommunityID != nil {
		*in.CommunityID = strings.TrimSpace(*in.CommunityID)
	}
	if in.CommunityName != nil {
		*in.CommunityName = strings.TrimSpace(*in.CommunityName)
	}
	if in.Status != nil {
		*in.Status = strings.TrimSpace(*in.Status)
	}
	if in.EventType != nil {
		*in.EventType = strings.TrimSpace(*in.EventType)
	}
	if in.Location != nil {
		*in.Location = strings.TrimSpace(*in.Location)
	}
	if in.ImageURL != nil {
		*in.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
}

// ListEventsInput represents input for listing events.
type ListEventsInput struct {
	Status      string `json:"status,omitempty"`
	CommunityID string `json:"communityId,omitempty"`
	Limit       int64  `json:"limit,omitempty"`
}
