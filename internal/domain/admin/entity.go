package admin

// DashboardStats is the platform-wide dashboard snapshot
type DashboardStats struct {
	Users struct {
		Total       int `json:"total"`
		Customers   int `json:"customers"`
		Organizers  int `json:"organizers"`
		Banned      int `json:"banned"`
		NewToday    int `json:"new_today"`
		NewThisWeek int `json:"new_this_week"`
	} `json:"users"`

	Venues struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		NewToday int `json:"new_today"`
	} `json:"venues"`

	Events struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"events"`

	Bookings struct {
		Total     int `json:"total"`
		Pending   int `json:"pending"`
		Confirmed int `json:"confirmed"`
		Cancelled int `json:"cancelled"`
		Today     int `json:"today"`
	} `json:"bookings"`

	Revenue struct {
		Total     float64 `json:"total"`
		ThisMonth float64 `json:"this_month"`
		Refunded  float64 `json:"refunded"`
	} `json:"revenue"`
}
