package models

import "time"

// Bonus is a recognition given from one user to one or more receivers.
type Bonus struct {
	ID                 string    `json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	ParentBonusID      *string   `json:"parent_bonus_id"`
	Reason             string    `json:"reason"`
	ReasonDecoded      string    `json:"reason_decoded"`
	ReasonHTML         string    `json:"reason_html"`
	Amount             int       `json:"amount"`
	AmountWithCurrency string    `json:"amount_with_currency"`
	FamilyAmount       int       `json:"family_amount"`
	Value              *string   `json:"value"`
	Hashtag            *string   `json:"hashtag"`
	Giver              User      `json:"giver"`
	Receivers          []User    `json:"receivers"`
}
