package repository

import (
	"context"
	"database/sql"

	"github.com/QuangTung97/promo-engagement/model"
)

// User reads user profiles owned by the user service
type User interface {
	GetUser(ctx context.Context, id int64) (model.NullUserProfile, error)
}

type userImpl struct {
}

// NewUser ...
func NewUser() User {
	return &userImpl{}
}

// GetUser ...
func (u *userImpl) GetUser(ctx context.Context, id int64) (model.NullUserProfile, error) {
	query := `
SELECT id, language, timezone, notification_enabled, calendar_enabled
FROM user_profile WHERE id = ?
`
	var result model.UserProfile
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	if err == sql.ErrNoRows {
		return model.NullUserProfile{}, nil
	}
	if err != nil {
		return model.NullUserProfile{}, err
	}
	return model.NullUserProfile{Valid: true, User: result}, nil
}
