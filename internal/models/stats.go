package models

// StatsOverview summarizes the card collection for the home and stats
// surfaces.
type StatsOverview struct {
	TotalCards int                `json:"totalCards"`
	DueNow     int                `json:"dueNow"`
	ByStatus   map[CardStatus]int `json:"byStatus"`
}
