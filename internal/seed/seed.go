// Package seed holds the hard-coded partner communities and flagship events
// the site shipped with before the Firestore migration. Static records are
// immutable through the API; communities stay here until an admin runs the
// one-time migration into Firestore.
package seed

import (
	"time"

	"devsa-hub/backend/internal/domain/community"
	"devsa-hub/backend/internal/domain/event"
)

// Communities returns the static partner roster served while the communities
// store is still in legacy static mode.
func Communities() []community.Community {
	return []community.Community{
		{
			ID:          "devsa",
			Name:        "DEVSA",
			Description: "San Antonio's tech community hub: builders, speakers, and everyone in between.",
			Links: community.SocialLinks{
				Website: "https://devsanantonio.com",
				Discord: "https://discord.gg/devsa",
				GitHub:  "https://github.com/devsa",
				Twitter: "https://twitter.com/devsatx",
			},
			IsStatic: true,
		},
		{
			ID:          "alamo-python",
			Name:        "Alamo Python",
			Description: "Python users group meeting monthly around the Alamo City.",
			Links: community.SocialLinks{
				Meetup:  "https://www.meetup.com/alamo-python",
				GitHub:  "https://github.com/alamo-python",
				Discord: "https://discord.gg/alamo-python",
			},
			IsStatic: true,
		},
		{
			ID:          "satx-js",
			Name:        "SATX JavaScript",
			Description: "JavaScript and web platform meetup for San Antonio developers.",
			Links: community.SocialLinks{
				Meetup:  "https://www.meetup.com/satx-js",
				Twitter: "https://twitter.com/satxjs",
			},
			IsStatic: true,
		},
		{
			ID:          "sa-devops",
			Name:        "San Antonio DevOps",
			Description: "Infrastructure, platform, and reliability practitioners swapping war stories.",
			Links: community.SocialLinks{
				Meetup:   "https://www.meetup.com/sa-devops",
				LinkedIn: "https://www.linkedin.com/groups/sa-devops",
			},
			IsStatic: true,
		},
	}
}

// Events returns the flagship static events. cmd/seed-admin writes these into
// Firestore with the static flag set, so they render everywhere but reject
// every mutation from the dashboard.
func Events() []event.Event {
	return []event.Event{
		{
			ID:           "devsa-summit",
			Slug:         "devsa-summit-2026",
			Title:        "DEVSA Summit 2026",
			Description:  "The annual all-communities conference: talks, hallway track, and tacos.",
			Date:         time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2026, 10, 17, 23, 0, 0, 0, time.UTC),
			CommunityIDs: []string{"devsa"},
			Status:       event.StatusPublished,
			EventType:    "in-person",
			Location:     "Geekdom, 110 E Houston St",
			RSVPEnabled:  true,
			IsStatic:     true,
		},
		{
			ID:           "holiday-social",
			Slug:         "devsa-holiday-social-2026",
			Title:        "DEVSA Holiday Social",
			Description:  "Cross-community end-of-year social. No talks, just people.",
			Date:         time.Date(2026, 12, 10, 0, 30, 0, 0, time.UTC),
			CommunityIDs: []string{"devsa", "alamo-python", "satx-js"},
			Status:       event.StatusPublished,
			EventType:    "in-person",
			Location:     "The Friendly Spot",
			RSVPEnabled:  true,
			IsStatic:     true,
		},
	}
}
