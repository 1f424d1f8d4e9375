package boundary

import (
	"context"

	"google.golang.org/grpc"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/faultlog"
)

// UnaryServerInterceptor applies the fault boundary to gRPC handlers. The
// pipeline matches the HTTP middleware: classify, record before replying,
// then surface the taxonomy kind as a gRPC status.
func UnaryServerInterceptor(rec *faultlog.Recorder, opts Options) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if rc := recover(); rc != nil {
				ferr := fault.FromPanic(rc)
				rec.Record(ctx, ferr, grpcContext(ctx, info))
				resp, err = nil, status.Error(grpccodes.Internal, codes.Internal.Message)
			}
		}()

		resp, err = handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		ferr := fault.Classify(err)
		rec.Record(ctx, ferr, grpcContext(ctx, info))
		return nil, status.Error(grpcCode(ferr.Code), ferr.Message)
	}
}

func grpcContext(ctx context.Context, info *grpc.UnaryServerInfo) *faultlog.RequestContext {
	rc := &faultlog.RequestContext{
		URL:    info.FullMethod,
		Method: "grpc",
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		rc.IP = p.Addr.String()
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ua := md.Get("user-agent"); len(ua) > 0 {
			rc.UserAgent = ua[0]
		}
		if ids := md.Get("x-request-id"); len(ids) > 0 {
			rc.ID = ids[0]
		}
	}
	return rc
}

// grpcCode maps a taxonomy code onto the closest gRPC status code.
func grpcCode(code string) grpccodes.Code {
	switch code {
	case codes.Validation.Code:
		return grpccodes.InvalidArgument
	case codes.Authentication.Code:
		return grpccodes.Unauthenticated
	case codes.Authorization.Code:
		return grpccodes.PermissionDenied
	case codes.NotFound.Code:
		return grpccodes.NotFound
	case codes.Conflict.Code:
		return grpccodes.AlreadyExists
	case codes.RateLimit.Code:
		return grpccodes.ResourceExhausted
	case codes.Timeout.Code:
		return grpccodes.DeadlineExceeded
	case codes.Unavailable.Code:
		return grpccodes.Unavailable
	default:
		return grpccodes.Internal
	}
}
