package model

import (
	"database/sql"
	"time"
)

// Campaign is read-only to the engine, created by the authoring process
type Campaign struct {
	ID       int64          `db:"id"`
	Name     string         `db:"name"`
	Status   CampaignStatus `db:"status"`
	CardType CardType       `db:"card_type"`

	RewardRuleID sql.NullInt64 `db:"reward_rule_id"`

	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`

	// FromTime and ToTime are the daily active window ("HH:MM"), empty means the whole day
	FromTime string `db:"from_time"`
	ToTime   string `db:"to_time"`

	Geofence    sql.NullString `db:"geofence"`
	PersonaTags string         `db:"persona_tags"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}

// IsRunning checks status and the total duration window
func (c Campaign) IsRunning(now time.Time) bool {
	if c.Status != CampaignStatusActive {
		return false
	}
	return !now.Before(c.StartTime) && now.Before(c.EndTime)
}

// CampaignStatus ...
type CampaignStatus int

const (
	// CampaignStatusActive ...
	CampaignStatusActive CampaignStatus = 1
	// CampaignStatusInactive ...
	CampaignStatusInactive CampaignStatus = 2
)

// CardType ...
type CardType int

const (
	// CardTypeInfo ...
	CardTypeInfo CardType = 1
	// CardTypeGoEarly ...
	CardTypeGoEarly CardType = 2
	// CardTypeGoLater ...
	CardTypeGoLater CardType = 3
	// CardTypeChangeMode ...
	CardTypeChangeMode CardType = 4
	// CardTypeMicrosurvey ...
	CardTypeMicrosurvey CardType = 5
	// CardTypeDuoMatch ...
	CardTypeDuoMatch CardType = 6
)

var cardTypeNames = map[CardType]string{
	CardTypeInfo:        "info",
	CardTypeGoEarly:     "go-early",
	CardTypeGoLater:     "go-later",
	CardTypeChangeMode:  "change-mode",
	CardTypeMicrosurvey: "microsurvey",
	CardTypeDuoMatch:    "duo-match",
}

func (t CardType) String() string {
	name, ok := cardTypeNames[t]
	if !ok {
		return "unknown"
	}
	return name
}

// ParseCardType ...
func ParseCardType(s string) (CardType, bool) {
	for t, name := range cardTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// ResendableCardTypes ...
func ResendableCardTypes() []CardType {
	return []CardType{CardTypeInfo, CardTypeGoEarly, CardTypeGoLater, CardTypeChangeMode}
}

// Resendable reports whether a delivered offer of this type may be sent a second time
func (t CardType) Resendable() bool {
	for _, resendable := range ResendableCardTypes() {
		if t == resendable {
			return true
		}
	}
	return false
}
