package grpc

// proto.go defines the gRPC server interface derived from
// finhogar/loanengine/v1/loan_engine.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/finhogar/loan-engine/api/gen/go/finhogar/loanengine/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finhogar/loan-engine/internal/application/dto"
)

// LoanEngineServiceServer is the server API for LoanEngineService.
// It mirrors the proto-generated interface from finhogar.loanengine.v1.LoanEngineService.
type LoanEngineServiceServer interface {
	SetupLoan(context.Context, *dto.SetupLoanRequest) (*dto.LoanResponse, error)
	ImportSchedule(context.Context, *dto.ImportScheduleRequest) (*dto.LoanResponse, error)
	GetLoan(context.Context, *dto.GetLoanRequest) (*dto.LoanResponse, error)
	ListLoans(context.Context, *dto.ListLoansRequest) (*dto.ListLoansResponse, error)
	RecordPayment(context.Context, *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	ReversePayment(context.Context, *dto.ReversePaymentRequest) (*dto.ReversePaymentResponse, error)
	SimulatePrepayment(context.Context, *dto.SimulatePrepaymentRequest) (*dto.PrepaymentPreviewResponse, error)
	ApplyPrepayment(context.Context, *dto.ApplyPrepaymentRequest) (*dto.ApplyPrepaymentResponse, error)
	ClearLoan(context.Context, *dto.ClearLoanRequest) (*dto.LoanResponse, error)
	mustEmbedUnimplementedLoanEngineServiceServer()
}

// UnimplementedLoanEngineServiceServer provides forward-compatible default implementations.
type UnimplementedLoanEngineServiceServer struct{}

func (UnimplementedLoanEngineServiceServer) SetupLoan(context.Context, *dto.SetupLoanRequest) (*dto.LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetupLoan not implemented")
}
func (UnimplementedLoanEngineServiceServer) ImportSchedule(context.Context, *dto.ImportScheduleRequest) (*dto.LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportSchedule not implemented")
}
func (UnimplementedLoanEngineServiceServer) GetLoan(context.Context, *dto.GetLoanRequest) (*dto.LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLoanEngineServiceServer) ListLoans(context.Context, *dto.ListLoansRequest) (*dto.ListLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLoans not implemented")
}
func (UnimplementedLoanEngineServiceServer) RecordPayment(context.Context, *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordPayment not implemented")
}
func (UnimplementedLoanEngineServiceServer) ReversePayment(context.Context, *dto.ReversePaymentRequest) (*dto.ReversePaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReversePayment not implemented")
}
func (UnimplementedLoanEngineServiceServer) SimulatePrepayment(context.Context, *dto.SimulatePrepaymentRequest) (*dto.PrepaymentPreviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulatePrepayment not implemented")
}
func (UnimplementedLoanEngineServiceServer) ApplyPrepayment(context.Context, *dto.ApplyPrepaymentRequest) (*dto.ApplyPrepaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApplyPrepayment not implemented")
}
func (UnimplementedLoanEngineServiceServer) ClearLoan(context.Context, *dto.ClearLoanRequest) (*dto.LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearLoan not implemented")
}
func (UnimplementedLoanEngineServiceServer) mustEmbedUnimplementedLoanEngineServiceServer() {}

// RegisterLoanEngineServiceServer registers the LoanEngineServiceServer with the gRPC server.
func RegisterLoanEngineServiceServer(s *grpclib.Server, srv LoanEngineServiceServer) {
	s.RegisterService(&_LoanEngineService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LoanEngineService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "finhogar.loanengine.v1.LoanEngineService",
	HandlerType: (*LoanEngineServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SetupLoan", Handler: _LoanEngineService_SetupLoan_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "ImportSchedule", Handler: _LoanEngineService_ImportSchedule_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LoanEngineService_GetLoan_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "ListLoans", Handler: _LoanEngineService_ListLoans_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "RecordPayment", Handler: _LoanEngineService_RecordPayment_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ReversePayment", Handler: _LoanEngineService_ReversePayment_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "SimulatePrepayment", Handler: _LoanEngineService_SimulatePrepayment_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "ApplyPrepayment", Handler: _LoanEngineService_ApplyPrepayment_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ClearLoan", Handler: _LoanEngineService_ClearLoan_Handler},                   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanEngineService_SetupLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.SetupLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanEngineServiceServer).SetupLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finhogar.loanengine.v1.LoanEngineService/SetupLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanEngineServiceServer).SetupLoan(ctx, req.(*dto.SetupLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanEngineService_ImportSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ImportScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanEngineServiceServer).ImportSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finhogar.loanengine.v1.LoanEngineService/ImportSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanEngineServiceServer).ImportSchedule(ctx, req.(*dto.ImportScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanEngineService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanEngineServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finhogar.loanengine.v1.LoanEngineService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanEngineServiceServer).GetLoan(ctx, req.(*dto.GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanEngineService_ListLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ListLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanEngineServiceServer).ListLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finhogar.loanengine.v1.LoanEngineService/ListLoans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanEngineServiceServer).ListLoans(ctx, req.(*dto.ListLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanEngineService_RecordPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.RecordPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanEngineServiceServer).RecordPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finhogar.loanengine.v1.LoanEngineService/RecordPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanEngineServiceServer).RecordPayment(ctx, req.(*dto.RecordPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanEngineService_ReversePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ReversePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanEngineServiceServer).ReversePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finhogar.loanengine.v1.LoanEngineService/ReversePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanEngineServiceServer).ReversePayment(ctx, req.(*dto.ReversePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanEngineService_SimulatePrepayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.SimulatePrepaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanEngineServiceServer).SimulatePrepayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finhogar.loanengine.v1.LoanEngineService/SimulatePrepayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanEngineServiceServer).SimulatePrepayment(ctx, req.(*dto.SimulatePrepaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanEngineService_ApplyPrepayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ApplyPrepaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanEngineServiceServer).ApplyPrepayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finhogar.loanengine.v1.LoanEngineService/ApplyPrepayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanEngineServiceServer).ApplyPrepayment(ctx, req.(*dto.ApplyPrepaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanEngineService_ClearLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ClearLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanEngineServiceServer).ClearLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finhogar.loanengine.v1.LoanEngineService/ClearLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanEngineServiceServer).ClearLoan(ctx, req.(*dto.ClearLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}
