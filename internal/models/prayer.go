package models

// PrayerRequest is a community prayer wall entry. PrayingCount only moves
// through the idempotent pray operation and never decrements.
type PrayerRequest struct {
	ID           string `json:"id"`
	Author       string `json:"author"`
	Content      string `json:"content"`
	PrayingCount int    `json:"prayingCount"`
	Time         string `json:"time"`
	Timestamp    int64  `json:"timestamp"`
}
