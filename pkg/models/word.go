package models

import "time"

// WordEntry is one saved spelling-practice word.
type WordEntry struct {
	ID        int64     `json:"id" db:"id"`
	Word      string    `json:"word" db:"word"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
