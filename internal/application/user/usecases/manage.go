package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
)

// loadActor fetches the acting user and rejects non-admins up front.
func loadActor(ctx context.Context, repo user.UserRepository, actorID uint) (*user.User, error) {
	actor, err := repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", actorID))
	}
	if !actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can manage users")
	}
	return actor, nil
}

// canManage gates account administration. Touching an admin or a
// superadmin account requires the superadmin role.
func canManage(actor, target *user.User) error {
	if target.IsAdmin() && !actor.IsSuperAdmin() {
		return errors.NewForbiddenError("only the superadmin can manage admin accounts")
	}
	return nil
}
