package models

// User is a player's identity inside one application.
type User struct {
	Alias  string `json:"alias"`
	Status string `json:"status"`
}

// Entity status values.
const (
	StatusActive      = "ACTIVE"
	StatusDeactivated = "DEACTIVATED"
)

// User access states.
const (
	UserStateAllowed  = "ALLOWED"
	UserStateBanned   = "BANNED"
	UserStateInactive = "DEACTIVATED"
)

type GetUserForApplicationOutput struct {
	User User `json:"user"`
}

type CreateApplicationUserInput struct {
	Alias string `json:"alias"`
}

type CreateApplicationUserOutput struct {
	ID string `json:"id"`
}
