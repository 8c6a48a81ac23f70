// Package engagementpb defines the engagement.v1.EngagementService gRPC contract.
// Requests and responses are google.protobuf.Struct messages.
package engagementpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName ...
const ServiceName = "engagement.v1.EngagementService"

const (
	// MethodRecordResponse ...
	MethodRecordResponse = "/" + ServiceName + "/RecordResponse"
	// MethodGetAssignment ...
	MethodGetAssignment = "/" + ServiceName + "/GetAssignment"
	// MethodDeliver ...
	MethodDeliver = "/" + ServiceName + "/Deliver"
)

// EngagementServiceServer ...
type EngagementServiceServer interface {
	RecordResponse(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetAssignment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Deliver(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// EngagementServiceClient ...
type EngagementServiceClient interface {
	RecordResponse(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetAssignment(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Deliver(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type engagementServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEngagementServiceClient ...
func NewEngagementServiceClient(cc grpc.ClientConnInterface) EngagementServiceClient {
	return &engagementServiceClient{cc: cc}
}

func (c *engagementServiceClient) invoke(
	ctx context.Context, method string, req *structpb.Struct, opts []grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, method, req, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engagementServiceClient) RecordResponse(
	ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodRecordResponse, req, opts)
}

func (c *engagementServiceClient) GetAssignment(
	ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetAssignment, req, opts)
}

func (c *engagementServiceClient) Deliver(
	ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodDeliver, req, opts)
}

type unaryMethod func(srv EngagementServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

// unaryHandler returns an unnamed func type, it must be assignable to grpc.MethodDesc.Handler
func unaryHandler(fullMethod string, call unaryMethod) func(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	return func(
		srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
	) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EngagementServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(EngagementServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// EngagementServiceDesc ...
var EngagementServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EngagementServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecordResponse",
			Handler: unaryHandler(MethodRecordResponse,
				func(srv EngagementServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
					return srv.RecordResponse(ctx, req)
				}),
		},
		{
			MethodName: "GetAssignment",
			Handler: unaryHandler(MethodGetAssignment,
				func(srv EngagementServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
					return srv.GetAssignment(ctx, req)
				}),
		},
		{
			MethodName: "Deliver",
			Handler: unaryHandler(MethodDeliver,
				func(srv EngagementServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
					return srv.Deliver(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "engagement/v1/engagement.proto",
}

// RegisterEngagementServiceServer ...
func RegisterEngagementServiceServer(s grpc.ServiceRegistrar, srv EngagementServiceServer) {
	s.RegisterService(&EngagementServiceDesc, srv)
}
