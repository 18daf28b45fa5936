package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Audience is how prompts address the wearer.
func (g Gender) Audience() string {
	switch g {
	case GenderMale:
		return "men"
	case GenderFemale:
		return "women"
	default:
		return "anyone"
	}
}

type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Gender      Gender    `json:"gender"`
	Preferences []string  `json:"preferences"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// Registration is a stored user record including its credential hash.
type Registration struct {
	User
	PasswordHash string `json:"passwordHash"`
}
