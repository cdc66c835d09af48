package schema

import (
	"strings"

	types "github.com/yungbote/aedb-backend/internal/domain"
)

type UserSchema struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func UserFromModel(u *types.User) UserSchema {
	return UserSchema{ID: u.ID, Email: u.Email, Name: u.Name}
}

type RegisterSchema struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (s RegisterSchema) Normalized() RegisterSchema {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Name = strings.TrimSpace(s.Name)
	return s
}

type LoginSchema struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenSchema struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func BearerToken(token string, expiresIn int64) TokenSchema {
	return TokenSchema{AccessToken: token, TokenType: "bearer", ExpiresIn: expiresIn}
}
