package dto

import (
	"dost/infras/jwt"
	userModel "dost/internal/domains/user/model"
)

type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"omitempty"`
	Remember bool   `json:"remember"`
}

// AuthUser is the minimal projection returned on sign-in.
type AuthUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (a *AuthUser) FromModel(user userModel.User) {
	a.ID = user.ID
	a.Email = user.Email
	a.FullName = user.FullName
	a.Role = user.Role
}

type SignInResponse struct {
	User         AuthUser `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
}

func (s *SignInResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	s.AccessToken = tokenPair.AccessToken
	s.RefreshToken = tokenPair.RefreshToken
	s.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}
