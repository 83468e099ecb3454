package models

import "time"

// Installment represents one scheduled payment of a credit
type Installment struct {
	Number     int       `json:"number"`
	Date       time.Time `json:"date"`
	Body       int64     `json:"body"`
	Interest   int64     `json:"interest"`
	Commission int64     `json:"commission"`
	Total      int64     `json:"total"`
}

// Schedule represents the full payment schedule of a credit
type Schedule struct {
	IssuedDate   time.Time     `json:"issued_date"`
	FinishDate   time.Time     `json:"finish_date"`
	Installments []Installment `json:"installments"`

	BodySubtotal       int64 `json:"body_subtotal"`
	InterestSubtotal   int64 `json:"interest_subtotal"`
	CommissionSubtotal int64 `json:"commission_subtotal"`
	TotalSubtotal      int64 `json:"total_subtotal"`
}
