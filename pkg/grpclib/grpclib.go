package grpclib

import (
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryHandlerFunc converts a panic into an Internal error
func RecoveryHandlerFunc(p interface{}) error {
	zap.L().Error("grpc panic recovered", zap.Any("panic", p), zap.Stack("stack"))
	return status.Errorf(codes.Internal, "internal error: %v", p)
}

// FieldViolation ...
type FieldViolation struct {
	Field       string
	Description string
}

// InvalidArgument builds an InvalidArgument status carrying a BadRequest detail
func InvalidArgument(msg string, violations ...FieldViolation) error {
	st := status.New(codes.InvalidArgument, msg)
	if len(violations) == 0 {
		return st.Err()
	}

	badRequest := &errdetails.BadRequest{}
	for _, v := range violations {
		badRequest.FieldViolations = append(badRequest.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: v.Description,
		})
	}

	withDetails, err := st.WithDetails(badRequest)
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// Error builds a status error from any error with the given code
func Error(code codes.Code, err error) error {
	return status.Error(code, err.Error())
}
