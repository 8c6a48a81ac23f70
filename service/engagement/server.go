package engagement

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/QuangTung97/promo-engagement/engagementpb"
	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/pkg/grpclib"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/structpb"
)

// Server ...
type Server struct {
	service IService
}

var _ engagementpb.EngagementServiceServer = &Server{}

// NewServer ...
func NewServer(service IService) *Server {
	return &Server{
		service: service,
	}
}

func toGRPCError(err error) error {
	switch {
	case IsNotFound(err):
		return grpclib.Error(codes.NotFound, err)
	case IsValidationError(err):
		field := ""
		switch {
		case isAny(err, ErrInvalidAnswer):
			field = "answers"
		case isAny(err, ErrInvalidResponse):
			field = "kind"
		case isAny(err, ErrInvalidRewardRule):
			field = "reward_rule_id"
		}
		return grpclib.InvalidArgument(err.Error(), grpclib.FieldViolation{
			Field:       field,
			Description: err.Error(),
		})
	case IsPreconditionFailure(err):
		return grpclib.Error(codes.FailedPrecondition, err)
	case IsCollaboratorFailure(err):
		return grpclib.Error(codes.Unavailable, err)
	default:
		return grpclib.Error(codes.Internal, err)
	}
}

func assignmentIDOf(req *structpb.Struct) (int64, error) {
	v, ok := req.GetFields()["assignment_id"]
	if !ok {
		return 0, grpclib.InvalidArgument("missing assignment_id", grpclib.FieldViolation{
			Field: "assignment_id", Description: "required",
		})
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return int64(kind.NumberValue), nil
	case *structpb.Value_StringValue:
		id, err := strconv.ParseInt(kind.StringValue, 10, 64)
		if err == nil {
			return id, nil
		}
	}
	return 0, grpclib.InvalidArgument("invalid assignment_id", grpclib.FieldViolation{
		Field: "assignment_id", Description: "must be an integer",
	})
}

func responseOf(req *structpb.Struct) (Response, error) {
	id, err := assignmentIDOf(req)
	if err != nil {
		return Response{}, err
	}

	fields := req.GetFields()
	kind, ok := model.ParseResponseKind(fields["kind"].GetStringValue())
	if !ok {
		return Response{}, grpclib.InvalidArgument("invalid kind", grpclib.FieldViolation{
			Field: "kind", Description: "must be one of accept, skip, answer",
		})
	}

	var answers []string
	for _, v := range fields["answers"].GetListValue().GetValues() {
		answers = append(answers, v.GetStringValue())
	}

	return Response{
		AssignmentID: id,
		Kind:         kind,
		Answers:      answers,
	}, nil
}

func formatNullTime(t sql.NullTime) interface{} {
	if !t.Valid {
		return nil
	}
	return t.Time.UTC().Format(time.RFC3339)
}

func formatNullDecimal(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal.StringFixed(2)
}

func assignmentFields(a model.Assignment) map[string]interface{} {
	var answer interface{}
	if a.Answer.Valid {
		answer = a.Answer.String
	}
	return map[string]interface{}{
		"id":                 strconv.FormatInt(a.ID, 10),
		"user_id":            strconv.FormatInt(a.UserID, 10),
		"campaign_id":        strconv.FormatInt(a.CampaignID, 10),
		"step_seq":           a.StepSeq,
		"status":             a.Status.String(),
		"resend_count":       a.ResendCount,
		"target_delivery_at": formatNullTime(a.TargetDeliveryAt),
		"delivered_at":       formatNullTime(a.DeliveredAt),
		"responded_at":       formatNullTime(a.RespondedAt),
		"expires_at":         formatNullTime(a.ExpiresAt),
		"answer":             answer,
		"reward_amount":      formatNullDecimal(a.RewardAmount),
	}
}

func issuanceStatusString(s model.IssuanceStatus) interface{} {
	switch s {
	case model.IssuanceStatusPending:
		return "pending"
	case model.IssuanceStatusIssued:
		return "issued"
	case model.IssuanceStatusFailed:
		return "failed"
	case model.IssuanceStatusZero:
		return "zero"
	default:
		return nil
	}
}

func newStruct(fields map[string]interface{}) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, grpclib.Error(codes.Internal, fmt.Errorf("build response: %w", err))
	}
	return s, nil
}

// RecordResponse ...
func (s *Server) RecordResponse(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	resp, err := responseOf(req)
	if err != nil {
		return nil, err
	}

	result, err := s.service.RecordResponse(ctx, resp)
	if err != nil {
		return nil, toGRPCError(err)
	}

	return newStruct(map[string]interface{}{
		"assignment":    assignmentFields(result.Assignment),
		"next_step":     result.NextStep,
		"reward":        formatNullDecimal(result.Reward),
		"reward_status": issuanceStatusString(result.RewardStatus),
	})
}

// GetAssignment ...
func (s *Server) GetAssignment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := assignmentIDOf(req)
	if err != nil {
		return nil, err
	}

	detail, err := s.service.GetAssignment(ctx, id)
	if err != nil {
		return nil, toGRPCError(err)
	}

	responses := make([]interface{}, 0, len(detail.Responses))
	for _, r := range detail.Responses {
		responses = append(responses, map[string]interface{}{
			"step_seq":   r.StepSeq,
			"kind":       r.Kind.String(),
			"answers":    r.Answers,
			"created_at": r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return newStruct(map[string]interface{}{
		"assignment": assignmentFields(detail.Assignment),
		"responses":  responses,
	})
}

// Deliver ...
func (s *Server) Deliver(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := assignmentIDOf(req)
	if err != nil {
		return nil, err
	}

	if err := s.service.ComposeAndDeliver(ctx, id); err != nil {
		return nil, toGRPCError(err)
	}

	detail, err := s.service.GetAssignment(ctx, id)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return newStruct(map[string]interface{}{
		"assignment": assignmentFields(detail.Assignment),
	})
}
