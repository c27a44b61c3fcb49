package domain

// User is the identity shape shared by auth responses and event payloads.
// Middlename, Lastname and Avatar are nullish: nil means not provided.
type User struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	Firstname  string  `json:"firstname"`
	Middlename *string `json:"middlename,omitempty"`
	Lastname   *string `json:"lastname,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
	Role       Role    `json:"role"`
}
