package model

type LoginRequest struct {
	Username string `json:"username"`
}

// LoginData is the body of a successful login. The refresh token only
// travels in the cookie.
type LoginData struct {
	AccessToken string `json:"accessToken"`
	User        *User  `json:"user"`
}

type RefreshData struct {
	AccessToken string `json:"accessToken"`
}

// Identity is the single claim embedded in every token.
type Identity struct {
	ID int64 `json:"id"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
