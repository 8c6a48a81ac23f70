package model

// UserProfile is owned by the user service, read-only here
type UserProfile struct {
	ID                  int64  `db:"id"`
	Language            string `db:"language"`
	Timezone            string `db:"timezone"`
	NotificationEnabled bool   `db:"notification_enabled"`
	CalendarEnabled     bool   `db:"calendar_enabled"`
}

// NullUserProfile ...
type NullUserProfile struct {
	Valid bool
	User  UserProfile
}
