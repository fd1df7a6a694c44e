package auth

import (
	authinfra "yordam/internal/infrastructure/auth"

	"yordam/internal/application/user/usecases"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type LoginResponse struct {
	Tokens TokenResponse     `json:"tokens"`
	User   *usecases.UserDTO `json:"user"`
}

func toTokenResponse(pair *authinfra.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}

func toLoginResponse(result *usecases.LoginResult) LoginResponse {
	return LoginResponse{
		Tokens: toTokenResponse(result.Tokens),
		User:   result.User,
	}
}

type ProfileResponse struct {
	User             *usecases.UserDTO             `json:"user"`
	Responsibilities []*usecases.ResponsibilityDTO `json:"responsibilities"`
}
