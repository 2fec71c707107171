package models

// Company holds the account-wide settings of a Bonusly company.
type Company struct {
	Name           string   `json:"name"`
	TimeZone       string   `json:"time_zone"`
	Hashtags       []string `json:"hashtags"`
	DefaultHashtag *string  `json:"default_hashtag"`
}
