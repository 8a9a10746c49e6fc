package utils

import (
	"context"

	"gearguard/pkg/apperrors"
	"gearguard/pkg/contextkeys"
)

// GetUserIDFromCtx returns the authenticated user id placed into the request
// context by the auth middleware.
func GetUserIDFromCtx(ctx context.Context) (string, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || id == "" {
		return "", apperrors.ErrUnauthorized
	}
	return id, nil
}
