package domain

// User is the persisted identity record. The auth service reads it and only
// ever writes through registration.
type User struct {
	ID           int64
	Name         string
	PasswordHash string
	Email        string
	TelegramID   string
	Roles        []string
}

type Role struct {
	ID   int64
	Name string
}

// Identity is the resolved snapshot handed to callers of token validation
// and to the gateway for header injection. It never carries the password
// hash.
type Identity struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email,omitempty"`
	TelegramID string   `json:"telegramId,omitempty"`
	Roles      []string `json:"roles"`
}

// IdentityFromUser maps a stored user to its public snapshot.
func IdentityFromUser(user User) Identity {
	roles := make([]string, len(user.Roles))
	copy(roles, user.Roles)
	return Identity{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		TelegramID: user.TelegramID,
		Roles:      roles,
	}
}

// Page is a slice of results plus the paging metadata the HTTP surface
// exposes.
type Page struct {
	Content       []Identity `json:"content"`
	Page          int        `json:"page"`
	Size          int        `json:"size"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
}
