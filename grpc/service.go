package movegrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

const serviceName = "movestream.movewire.v1.BlockStreamService"

// BlockStreamServiceServer is the server-side interface for the block
// stream gRPC service.
type BlockStreamServiceServer interface {
	GetLedgerInfo(context.Context, *GetLedgerInfoRequest) (*LedgerInfo, error)
	StreamBlocks(*StreamBlocksRequest, grpc.ServerStream) error
}

// RegisterBlockStreamServiceServer registers srv on a gRPC server.
func RegisterBlockStreamServiceServer(s *grpc.Server, srv BlockStreamServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func handlerGetLedgerInfo(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(GetLedgerInfoRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(BlockStreamServiceServer).GetLedgerInfo(ctx, req)
}

func handlerStreamBlocks(srv any, stream grpc.ServerStream) error {
	req := new(StreamBlocksRequest)
	if err := stream.RecvMsg(req); err != nil {
		return err
	}
	return srv.(BlockStreamServiceServer).StreamBlocks(req, stream)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*BlockStreamServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetLedgerInfo", Handler: handlerGetLedgerInfo},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamBlocks",
			Handler:       handlerStreamBlocks,
			ServerStreams: true,
			ClientStreams: false,
		},
	},
	Metadata: "movestream/movewire/v1/service.cram",
}
