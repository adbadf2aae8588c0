package domain

import "time"

// User models an account in the system. It is a plain data record; any
// security-framework capabilities (claims, account flags) are derived from
// it rather than implemented on it.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Surname      string    `json:"surname,omitempty"`
	Telephone    string    `json:"telephone,omitempty"`
	BirthDate    time.Time `json:"birth_date,omitempty"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Authorities derives the capability claims granted by the user's role.
func (u *User) Authorities() []string {
	return []string{"ROLE_" + string(u.Role)}
}

// Age returns the user's age in full years at the given instant, or 0 when
// the birth date is unset.
func (u *User) Age(now time.Time) int {
	if u.BirthDate.IsZero() {
		return 0
	}
	years := now.Year() - u.BirthDate.Year()
	if u.BirthDate.AddDate(years, 0, 0).After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
