package stats

// DashboardStats is the summary card data shown at the top of the admin
// dashboard.
type DashboardStats struct {
	Events      EventStats   `json:"events"`
	Communities int          `json:"communities"`
	RSVPs       int          `json:"rsvps"`
	Newsletter  int          `json:"newsletter"`
	Speakers    int          `json:"speakers"`
	Requests    RequestStats `json:"requests"`
}

type EventStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
	Upcoming  int `json:"upcoming"`
	Archived  int `json:"archived"`
}

type RequestStats struct {
	Pending int `json:"pending"`
	Total   int `json:"total"`
}
