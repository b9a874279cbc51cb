package domain

import "time"

type User struct {
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	IsMember     bool      `json:"is_member"`
	MemberHours  float64   `json:"member_hours"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignupRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FullName    string  `json:"full_name"`
	IsMember    bool    `json:"is_member"`
	MemberHours float64 `json:"member_hours"`
}

type SignupResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	IsMember bool   `json:"is_member"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	IsMember    bool   `json:"is_member"`
}
