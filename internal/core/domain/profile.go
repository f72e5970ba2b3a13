package domain

// Profile is the public display data of a user known to the identity provider.
type Profile struct {
	UserID      string  `json:"userID"`
	DisplayName *string `json:"displayName"`
}
