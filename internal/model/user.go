package model

// User represents a profile document in the user collection.
type User struct {
	Username    string  `json:"username" bson:"username"`
	DisplayName *string `json:"display_name,omitempty" bson:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Bio         *string `json:"bio,omitempty" bson:"bio,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty" bson:"is_active"`
}

// Validate checks field constraints and fills declared defaults in place.
// It stops at the first violation.
func (u *User) Validate() error {
	if err := requireString("username", u.Username, 3, 32); err != nil {
		return err
	}
	if err := optionalString("display_name", u.DisplayName, 64); err != nil {
		return err
	}
	if err := optionalURL("avatar_url", u.AvatarURL); err != nil {
		return err
	}
	if err := optionalString("bio", u.Bio, 280); err != nil {
		return err
	}
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
	return nil
}
