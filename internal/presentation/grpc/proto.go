package grpc

// proto.go defines the gRPC server interface derived from
// meridian/lending/v1/lending.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/meridianbank/lending/api/gen/go/meridian/lending/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LendingServiceServer is the server API for LendingService.
// It mirrors the proto-generated interface from meridian.lending.v1.LendingService.
type LendingServiceServer interface {
	CreateLoan(context.Context, *CreateLoanRequestMsg) (*CreateLoanResponseMsg, error)
	GetLoan(context.Context, *GetLoanRequestMsg) (*GetLoanResponseMsg, error)
	ApplyPayment(context.Context, *ApplyPaymentRequestMsg) (*ApplyPaymentResponseMsg, error)
	ListInstallments(context.Context, *ListInstallmentsRequestMsg) (*ListInstallmentsResponseMsg, error)
	ListPayments(context.Context, *ListPaymentsRequestMsg) (*ListPaymentsResponseMsg, error)
	mustEmbedUnimplementedLendingServiceServer()
}

// UnimplementedLendingServiceServer provides forward-compatible default implementations.
type UnimplementedLendingServiceServer struct{}

func (UnimplementedLendingServiceServer) CreateLoan(context.Context, *CreateLoanRequestMsg) (*CreateLoanResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLoan not implemented")
}
func (UnimplementedLendingServiceServer) GetLoan(context.Context, *GetLoanRequestMsg) (*GetLoanResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLendingServiceServer) ApplyPayment(context.Context, *ApplyPaymentRequestMsg) (*ApplyPaymentResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApplyPayment not implemented")
}
func (UnimplementedLendingServiceServer) ListInstallments(context.Context, *ListInstallmentsRequestMsg) (*ListInstallmentsResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInstallments not implemented")
}
func (UnimplementedLendingServiceServer) ListPayments(context.Context, *ListPaymentsRequestMsg) (*ListPaymentsResponseMsg, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPayments not implemented")
}
func (UnimplementedLendingServiceServer) mustEmbedUnimplementedLendingServiceServer() {}

// RegisterLendingServiceServer registers the LendingServiceServer with the gRPC server.
func RegisterLendingServiceServer(s *grpclib.Server, srv LendingServiceServer) {
	s.RegisterService(&_LendingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LendingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "meridian.lending.v1.LendingService",
	HandlerType: (*LendingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateLoan", Handler: _LendingService_CreateLoan_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LendingService_GetLoan_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "ApplyPayment", Handler: _LendingService_ApplyPayment_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "ListInstallments", Handler: _LendingService_ListInstallments_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "ListPayments", Handler: _LendingService_ListPayments_Handler},         //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_CreateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLoanRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).CreateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.lending.v1.LendingService/CreateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).CreateLoan(ctx, req.(*CreateLoanRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.lending.v1.LendingService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).GetLoan(ctx, req.(*GetLoanRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ApplyPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyPaymentRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ApplyPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.lending.v1.LendingService/ApplyPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ApplyPayment(ctx, req.(*ApplyPaymentRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ListInstallments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInstallmentsRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ListInstallments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.lending.v1.LendingService/ListInstallments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ListInstallments(ctx, req.(*ListInstallmentsRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ListPayments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPaymentsRequestMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ListPayments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/meridian.lending.v1.LendingService/ListPayments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ListPayments(ctx, req.(*ListPaymentsRequestMsg))
	}
	return interceptor(ctx, in, info, handler)
}
