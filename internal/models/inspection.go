package models

import "time"

// NewInspection is a lead submitted from the public inspection form. Optional
// fields stay nil so they are stored as NULL.
type NewInspection struct {
	Name          string  `json:"name" example:"Aisyah"`
	Phone         string  `json:"phone" example:"017-889 7151"`
	Address       *string `json:"address"`
	PreferredTime *string `json:"preferred_time"`
	Message       *string `json:"message"`
	SourcePage    *string `json:"source_page"`
	UTMSource     *string `json:"utm_source"`
	UTMMedium     *string `json:"utm_medium"`
	UTMCampaign   *string `json:"utm_campaign"`
}

// Inspection is the projection returned to the simple admin view.
type Inspection struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Address       *string   `json:"address"`
	Message       *string   `json:"message"`
	PreferredTime *string   `json:"preferred_time"`
	SourcePage    *string   `json:"source_page"`
	UTMSource     *string   `json:"utm_source"`
	CreatedAt     time.Time `json:"created_at"`
}
