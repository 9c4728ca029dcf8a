package models

import "time"

type LoginAttempt struct {
	Count       int       `json:"count"`
	LastAttempt time.Time `json:"last_attempt"`
}
