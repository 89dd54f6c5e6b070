package model

// HitStats summarizes the strikes a player has launched
type HitStats struct {
	Hits  int `json:"hits"`
	Total int `json:"total"`
}

// HitRate returns hits as a percentage of total strikes, or 0 with no strikes
func (s HitStats) HitRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Total) * 100
}

// Misses returns the number of strikes that hit nothing
func (s HitStats) Misses() int {
	return s.Total - s.Hits
}
