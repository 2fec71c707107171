// Package models defines the wire types returned by the Bonusly API.
package models

import "time"

// UserMode describes how a user participates in giving and receiving
// bonuses.
type UserMode string

const (
	UserModeNormal     UserMode = "normal"
	UserModeObserver   UserMode = "observer"
	UserModeReceiver   UserMode = "receiver"
	UserModeBenefactor UserMode = "benefactor"
	UserModeBot        UserMode = "bot"
)

// User is a Bonusly user.
type User struct {
	ID                           string         `json:"id"`
	ShortName                    string         `json:"short_name"`
	FullName                     string         `json:"full_name"`
	DisplayName                  string         `json:"display_name"`
	Username                     string         `json:"username"`
	Email                        string         `json:"email"`
	Path                         string         `json:"path"`
	FullPicURL                   string         `json:"full_pic_url"`
	ProfilePicURL                string         `json:"profile_pic_url"`
	FirstName                    string         `json:"first_name"`
	LastName                     *string        `json:"last_name"`
	LastActiveAt                 *time.Time     `json:"last_active_at"`
	CreatedAt                    time.Time      `json:"created_at"`
	BudgetBoost                  int64          `json:"budget_boost"`
	UserMode                     UserMode       `json:"user_mode"`
	Country                      *string        `json:"country"`
	TimeZone                     string         `json:"time_zone"`
	CanReceive                   bool           `json:"can_receive"`
	CanGive                      bool           `json:"can_give"`
	GiveAmounts                  []int          `json:"give_amounts"`
	CustomProperties             map[string]any `json:"custom_properties"`
	Status                       string         `json:"status"`
	EarningBalance               *int64         `json:"earning_balance"`
	EarningBalanceWithCurrency   *string        `json:"earning_balance_with_currency"`
	LifetimeEarnings             *int64         `json:"lifetime_earnings"`
	LifetimeEarningsWithCurrency *string        `json:"lifetime_earnings_with_currency"`
	Admin                        *bool          `json:"admin"`
}
