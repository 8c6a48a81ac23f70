package engagement

import (
	"context"
	"time"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/shopspring/decimal"
)

//go:generate moq -out collaborator_mocks.go . Dispatcher Ledger TemplateRenderer

// Message is a fully composed notification
type Message struct {
	UserID       int64
	AssignmentID int64
	CampaignID   int64
	StepSeq      int
	CardType     model.CardType

	Title string
	Body  string

	// Push is false when the user disabled notifications, the card is shown in-app only
	Push        bool
	Calendar    bool
	Choices     []model.Choice
	MultiSelect bool
	ExpiresAt   time.Time
}

// Dispatcher hands off a message to the delivery channel, at least once
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}

// Ledger issues rewards, idempotent on reference
type Ledger interface {
	Issue(ctx context.Context, userID int64, amount decimal.Decimal, reference string) (string, error)
}

// TemplateParams ...
type TemplateParams struct {
	CampaignName string
	Content      string
	StepSeq      int
}

// Rendered ...
type Rendered struct {
	Title string
	Body  string
}

// TemplateRenderer ...
type TemplateRenderer interface {
	Render(ctx context.Context, cardType model.CardType, language string, params TemplateParams) (Rendered, error)
}

// Clock ...
type Clock interface {
	Now() time.Time
}

type systemClock struct {
}

func (systemClock) Now() time.Time {
	return time.Now()
}
