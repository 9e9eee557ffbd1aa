package models

import "time"

// Word represents an Ottoman Turkish vocabulary entry
type Word struct {
	ID            int       `json:"id" db:"id"`
	Ottoman       string    `json:"ottoman" db:"ottoman"`
	Pronunciation string    `json:"pronunciation" db:"pronunciation"`
	Turkish       string    `json:"turkish" db:"turkish"`
	Example       string    `json:"example" db:"example"`
	Category      string    `json:"category" db:"category"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
