package usecases

import (
	"context"

	"yordam/internal/domain/user"
	"yordam/internal/infrastructure/auth"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	Tokens *auth.TokenPair
}

// RefreshTokenUseCase rotates a token pair. The account is re-checked
// so a deactivated user cannot keep refreshing their way in.
type RefreshTokenUseCase struct {
	userRepo user.UserRepository
	tokens   TokenService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(userRepo user.UserRepository, tokens TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, errors.NewUnauthorizedError("token is not a refresh token")
	}

	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if !u.IsActive() {
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	// Role comes from the database, not the old token, so a role change
	// takes effect on the next refresh.
	pair, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to rotate tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to rotate tokens")
	}

	return &RefreshTokenResult{Tokens: pair}, nil
}
