package engagement

import (
	"context"
	"time"

	"github.com/QuangTung97/promo-engagement/config"
	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/pkg/reward"
	"github.com/QuangTung97/promo-engagement/pkg/timeslot"
	"github.com/QuangTung97/promo-engagement/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -out service_mocks_test.go . IService

// IService ...
type IService interface {
	ComposeAndDeliver(ctx context.Context, assignmentID int64) error
	RecordResponse(ctx context.Context, resp Response) (ResponseResult, error)
	GetAssignment(ctx context.Context, assignmentID int64) (AssignmentDetail, error)

	Sweep(ctx context.Context) (SweepResult, error)
	Reconcile(ctx context.Context) (ReconcileResult, error)
}

// Response is an inbound user response to a delivered assignment
type Response struct {
	AssignmentID int64
	Kind         model.ResponseKind
	Answers      []string
}

// ResponseResult ...
type ResponseResult struct {
	Assignment model.Assignment

	// NextStep is the chained survey step, 0 when the assignment is terminal
	NextStep int

	Reward       decimal.NullDecimal
	RewardStatus model.IssuanceStatus
}

// AssignmentDetail ...
type AssignmentDetail struct {
	Assignment model.Assignment
	Responses  []model.AssignmentResponse
}

// Repositories ...
type Repositories struct {
	Assignment repository.Assignment
	Campaign   repository.Campaign
	Reward     repository.Reward
	User       repository.User
}

// Collaborators ...
type Collaborators struct {
	Dispatcher Dispatcher
	Ledger     Ledger
	Renderer   TemplateRenderer
}

// Service implements the assignment state machine, the resend/expiry sweep and reward reconciliation
type Service struct {
	provider repository.Provider

	assignmentRepo repository.Assignment
	campaignRepo   repository.Campaign
	rewardRepo     repository.Reward
	userRepo       repository.User

	dispatcher Dispatcher
	ledger     Ledger
	renderer   TemplateRenderer

	sampler *reward.Sampler
	slots   *timeslot.Calculator
	conf    config.EngineConfig
	clock   Clock
	metrics *metrics
}

var _ IService = &Service{}

type serviceOptions struct {
	clock      Clock
	registerer prometheus.Registerer
}

// Option ...
type Option func(opts *serviceOptions)

// WithClock ...
func WithClock(clock Clock) Option {
	return func(opts *serviceOptions) {
		opts.clock = clock
	}
}

// WithRegisterer registers the engine metrics
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(opts *serviceOptions) {
		opts.registerer = reg
	}
}

// NewService ...
func NewService(
	provider repository.Provider,
	repos Repositories,
	collaborators Collaborators,
	sampler *reward.Sampler,
	conf config.EngineConfig,
	options ...Option,
) *Service {
	opts := serviceOptions{
		clock: systemClock{},
	}
	for _, fn := range options {
		fn(&opts)
	}

	return &Service{
		provider: provider,

		assignmentRepo: repos.Assignment,
		campaignRepo:   repos.Campaign,
		rewardRepo:     repos.Reward,
		userRepo:       repos.User,

		dispatcher: collaborators.Dispatcher,
		ledger:     collaborators.Ledger,
		renderer:   collaborators.Renderer,

		sampler: sampler,
		slots:   timeslot.NewCalculator(conf.SlotSize),
		conf:    conf,
		clock:   opts.clock,
		metrics: newMetrics(opts.registerer),
	}
}

// MySQL DATETIME columns are stored in UTC, without sub second precision
func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Second)
}

// GetAssignment ...
func (s *Service) GetAssignment(ctx context.Context, assignmentID int64) (AssignmentDetail, error) {
	ctx = s.provider.Readonly(ctx)

	a, err := s.getAssignment(ctx, assignmentID)
	if err != nil {
		return AssignmentDetail{}, err
	}

	responses, err := s.assignmentRepo.FindResponses(ctx, assignmentID)
	if err != nil {
		return AssignmentDetail{}, err
	}

	return AssignmentDetail{
		Assignment: a,
		Responses:  responses,
	}, nil
}

func (s *Service) getAssignment(ctx context.Context, id int64) (model.Assignment, error) {
	nullAssignment, err := s.assignmentRepo.GetAssignment(ctx, id)
	if err != nil {
		return model.Assignment{}, err
	}
	if !nullAssignment.Valid {
		return model.Assignment{}, ErrAssignmentNotFound
	}
	return nullAssignment.Assignment, nil
}

func (s *Service) getCampaign(ctx context.Context, id int64) (model.Campaign, error) {
	nullCampaign, err := s.campaignRepo.GetCampaign(ctx, id)
	if err != nil {
		return model.Campaign{}, err
	}
	if !nullCampaign.Valid {
		return model.Campaign{}, ErrCampaignNotFound
	}
	return nullCampaign.Campaign, nil
}

func (s *Service) getStep(ctx context.Context, campaignID int64, seq int) (model.Step, error) {
	nullStep, err := s.campaignRepo.GetStep(ctx, campaignID, seq)
	if err != nil {
		return model.Step{}, err
	}
	if !nullStep.Valid {
		return model.Step{}, ErrStepNotFound
	}
	return nullStep.Step, nil
}

func (s *Service) getUser(ctx context.Context, id int64) (model.UserProfile, error) {
	nullUser, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		return model.UserProfile{}, err
	}
	if !nullUser.Valid {
		return model.UserProfile{}, ErrUserNotFound
	}
	return nullUser.User, nil
}
