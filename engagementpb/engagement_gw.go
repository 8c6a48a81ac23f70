package engagementpb

import (
	"context"
	"io"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type route struct {
	method  string
	pattern string
	rpc     string
	hasBody bool
	call    func(ctx context.Context, client EngagementServiceClient, req *structpb.Struct) (*structpb.Struct, error)
}

var routes = []route{
	{
		method:  http.MethodPost,
		pattern: "/v1/assignments/{id}/responses",
		rpc:     MethodRecordResponse,
		hasBody: true,
		call: func(ctx context.Context, client EngagementServiceClient, req *structpb.Struct) (*structpb.Struct, error) {
			return client.RecordResponse(ctx, req)
		},
	},
	{
		method:  http.MethodGet,
		pattern: "/v1/assignments/{id}",
		rpc:     MethodGetAssignment,
		call: func(ctx context.Context, client EngagementServiceClient, req *structpb.Struct) (*structpb.Struct, error) {
			return client.GetAssignment(ctx, req)
		},
	},
	{
		method:  http.MethodPost,
		pattern: "/v1/assignments/{id}/deliver",
		rpc:     MethodDeliver,
		call: func(ctx context.Context, client EngagementServiceClient, req *structpb.Struct) (*structpb.Struct, error) {
			return client.Deliver(ctx, req)
		},
	},
}

// RegisterEngagementServiceHandlerFromEndpoint dials the gRPC endpoint and serves the HTTP routes on mux
func RegisterEngagementServiceHandlerFromEndpoint(
	ctx context.Context, mux *runtime.ServeMux, endpoint string, opts []grpc.DialOption,
) error {
	conn, err := grpc.DialContext(ctx, endpoint, opts...)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	return RegisterEngagementServiceHandlerClient(mux, NewEngagementServiceClient(conn))
}

// RegisterEngagementServiceHandlerClient ...
func RegisterEngagementServiceHandlerClient(mux *runtime.ServeMux, client EngagementServiceClient) error {
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, newHandler(mux, client, r)); err != nil {
			return err
		}
	}
	return nil
}

func newHandler(mux *runtime.ServeMux, client EngagementServiceClient, r route) runtime.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request, pathParams map[string]string) {
		ctx, cancel := context.WithCancel(req.Context())
		defer cancel()

		inbound, outbound := runtime.MarshalerForRequest(mux, req)

		ctx, err := runtime.AnnotateContext(ctx, mux, req, r.rpc, runtime.WithHTTPPathPattern(r.pattern))
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, req, err)
			return
		}

		msg := &structpb.Struct{}
		if r.hasBody {
			err := inbound.NewDecoder(req.Body).Decode(msg)
			if err != nil && err != io.EOF {
				runtime.HTTPError(ctx, mux, outbound, w, req,
					status.Errorf(codes.InvalidArgument, "decode body: %v", err))
				return
			}
		}
		if msg.Fields == nil {
			msg.Fields = map[string]*structpb.Value{}
		}
		msg.Fields["assignment_id"] = structpb.NewStringValue(pathParams["id"])

		resp, err := r.call(ctx, client, msg)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, req, err)
			return
		}

		runtime.ForwardResponseMessage(ctx, mux, outbound, w, req, resp, mux.GetForwardResponseOptions()...)
	}
}
