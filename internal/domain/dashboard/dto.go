package dashboard

import "time"

// StatsResponse is the admin dashboard headline for one day.
type StatsResponse struct {
	Date           string    `json:"date"`
	TotalEmployees int64     `json:"total_employees"`
	PresentToday   int64     `json:"present_today"`
	AbsentToday    int64     `json:"absent_today"`
	OnLeave        int64     `json:"on_leave"`
	GeneratedAt    time.Time `json:"generated_at"`
}
