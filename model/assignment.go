package model

import (
	"database/sql"
	"github.com/shopspring/decimal"
	"time"
)

// Assignment is one user's progress through one campaign
type Assignment struct {
	ID         int64 `db:"id"`
	UserID     int64 `db:"user_id"`
	CampaignID int64 `db:"campaign_id"`
	StepSeq    int   `db:"step_seq"`

	Status  AssignmentStatus `db:"status"`
	Version int64            `db:"version"`

	ResendCount      int          `db:"resend_count"`
	TargetDeliveryAt sql.NullTime `db:"target_delivery_at"`
	DeliveredAt      sql.NullTime `db:"delivered_at"`
	RespondedAt      sql.NullTime `db:"responded_at"`
	ExpiresAt        sql.NullTime `db:"expires_at"`

	Answer       sql.NullString      `db:"answer"`
	RewardAmount decimal.NullDecimal `db:"reward_amount"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullAssignment ...
type NullAssignment struct {
	Valid      bool
	Assignment Assignment
}

// AssignmentStatus ...
type AssignmentStatus int

const (
	// AssignmentStatusPending ...
	AssignmentStatusPending AssignmentStatus = 1
	// AssignmentStatusDelivered ...
	AssignmentStatusDelivered AssignmentStatus = 2
	// AssignmentStatusRespondedAccept ...
	AssignmentStatusRespondedAccept AssignmentStatus = 3
	// AssignmentStatusRespondedSkip ...
	AssignmentStatusRespondedSkip AssignmentStatus = 4
	// AssignmentStatusRespondedAnswer ...
	AssignmentStatusRespondedAnswer AssignmentStatus = 5
	// AssignmentStatusCompleted ...
	AssignmentStatusCompleted AssignmentStatus = 6
	// AssignmentStatusSkipped ...
	AssignmentStatusSkipped AssignmentStatus = 7
	// AssignmentStatusExpired ...
	AssignmentStatusExpired AssignmentStatus = 8
)

var assignmentStatusNames = map[AssignmentStatus]string{
	AssignmentStatusPending:         "pending",
	AssignmentStatusDelivered:       "delivered",
	AssignmentStatusRespondedAccept: "responded_accept",
	AssignmentStatusRespondedSkip:   "responded_skip",
	AssignmentStatusRespondedAnswer: "responded_answer",
	AssignmentStatusCompleted:       "completed",
	AssignmentStatusSkipped:         "skipped",
	AssignmentStatusExpired:         "expired",
}

func (s AssignmentStatus) String() string {
	name, ok := assignmentStatusNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

// IsTerminal ...
func (s AssignmentStatus) IsTerminal() bool {
	switch s {
	case AssignmentStatusCompleted, AssignmentStatusSkipped, AssignmentStatusExpired:
		return true
	default:
		return false
	}
}

// AssignmentResponse is one recorded user response, kept across step chaining
type AssignmentResponse struct {
	ID           int64        `db:"id"`
	AssignmentID int64        `db:"assignment_id"`
	StepSeq      int          `db:"step_seq"`
	Kind         ResponseKind `db:"kind"`
	Answers      string       `db:"answers"`
	CreatedAt    time.Time    `db:"created_at"`
}

// ResponseKind ...
type ResponseKind int

const (
	// ResponseKindAccept ...
	ResponseKindAccept ResponseKind = 1
	// ResponseKindSkip ...
	ResponseKindSkip ResponseKind = 2
	// ResponseKindAnswer ...
	ResponseKindAnswer ResponseKind = 3
)

var responseKindNames = map[ResponseKind]string{
	ResponseKindAccept: "accept",
	ResponseKindSkip:   "skip",
	ResponseKindAnswer: "answer",
}

func (k ResponseKind) String() string {
	name, ok := responseKindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// ParseResponseKind ...
func ParseResponseKind(s string) (ResponseKind, bool) {
	for k, name := range responseKindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}
