package grpc

// proto.go defines the gRPC server interface derived from
// admin/feeledger/v1/feeledger.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/MonilK96/admin-panel-backend/api/gen/go/admin/feeledger/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InstallmentMessage is the wire representation of one installment.
type InstallmentMessage struct {
	ID              string `json:"id"`
	Amount          string `json:"amount"`
	Status          string `json:"status"`
	InstallmentDate string `json:"installment_date"`
	PaymentDate     string `json:"payment_date,omitempty"`
	Position        int    `json:"position"`
}

// LedgerMessage is the wire representation of a fee ledger.
type LedgerMessage struct {
	ID               string               `json:"id"`
	TenantID         string               `json:"tenant_id"`
	StudentID        string               `json:"student_id"`
	TotalAmount      string               `json:"total_amount"`
	Discount         string               `json:"discount"`
	AdmissionAmount  string               `json:"admission_amount"`
	AmountPaid       string               `json:"amount_paid"`
	AmountRemaining  string               `json:"amount_remaining"`
	NoOfInstallments int                  `json:"no_of_installments"`
	Installments     []InstallmentMessage `json:"installments"`
	Version          int                  `json:"version"`
}

type CreateFeeLedgerRequest struct {
	TenantID         string `json:"tenant_id" validate:"required"`
	StudentID        string `json:"student_id" validate:"required"`
	TotalAmount      string `json:"total_amount" validate:"required"`
	Discount         string `json:"discount"`
	AdmissionAmount  string `json:"admission_amount"`
	AmountPaid       string `json:"amount_paid"`
	AmountRemaining  string `json:"amount_remaining"`
	NoOfInstallments int    `json:"no_of_installments" validate:"min=0"`
	FirstDueDate     string `json:"first_due_date"`
}

type CreateFeeLedgerResponse struct {
	Ledger LedgerMessage `json:"ledger"`
}

type GetFeeLedgerRequest struct {
	TenantID  string `json:"tenant_id" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
}

type GetFeeLedgerResponse struct {
	Ledger LedgerMessage `json:"ledger"`
}

type RecordFeePaymentRequest struct {
	TenantID      string `json:"tenant_id" validate:"required"`
	StudentID     string `json:"student_id" validate:"required"`
	InstallmentID string `json:"installment_id" validate:"required"`
	Status        string `json:"status" validate:"required"`
	PaymentAmount string `json:"payment_amount" validate:"required"`
}

type RecordFeePaymentResponse struct {
	Ledger LedgerMessage `json:"ledger"`
}

// FeeLedgerServiceServer is the server API for FeeLedgerService.
// It mirrors the proto-generated interface from admin.feeledger.v1.FeeLedgerService.
type FeeLedgerServiceServer interface {
	CreateFeeLedger(context.Context, *CreateFeeLedgerRequest) (*CreateFeeLedgerResponse, error)
	GetFeeLedger(context.Context, *GetFeeLedgerRequest) (*GetFeeLedgerResponse, error)
	RecordFeePayment(context.Context, *RecordFeePaymentRequest) (*RecordFeePaymentResponse, error)
	mustEmbedUnimplementedFeeLedgerServiceServer()
}

// UnimplementedFeeLedgerServiceServer provides forward-compatible default implementations.
type UnimplementedFeeLedgerServiceServer struct{}

func (UnimplementedFeeLedgerServiceServer) CreateFeeLedger(context.Context, *CreateFeeLedgerRequest) (*CreateFeeLedgerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateFeeLedger not implemented")
}
func (UnimplementedFeeLedgerServiceServer) GetFeeLedger(context.Context, *GetFeeLedgerRequest) (*GetFeeLedgerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFeeLedger not implemented")
}
func (UnimplementedFeeLedgerServiceServer) RecordFeePayment(context.Context, *RecordFeePaymentRequest) (*RecordFeePaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordFeePayment not implemented")
}
func (UnimplementedFeeLedgerServiceServer) mustEmbedUnimplementedFeeLedgerServiceServer() {}

// RegisterFeeLedgerServiceServer registers the FeeLedgerServiceServer with the gRPC server.
func RegisterFeeLedgerServiceServer(s *grpclib.Server, srv FeeLedgerServiceServer) {
	s.RegisterService(&_FeeLedgerService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _FeeLedgerService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "admin.feeledger.v1.FeeLedgerService",
	HandlerType: (*FeeLedgerServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateFeeLedger", Handler: _FeeLedgerService_CreateFeeLedger_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "GetFeeLedger", Handler: _FeeLedgerService_GetFeeLedger_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "RecordFeePayment", Handler: _FeeLedgerService_RecordFeePayment_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _FeeLedgerService_CreateFeeLedger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFeeLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeeLedgerServiceServer).CreateFeeLedger(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/admin.feeledger.v1.FeeLedgerService/CreateFeeLedger",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeeLedgerServiceServer).CreateFeeLedger(ctx, req.(*CreateFeeLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FeeLedgerService_GetFeeLedger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFeeLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeeLedgerServiceServer).GetFeeLedger(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/admin.feeledger.v1.FeeLedgerService/GetFeeLedger",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeeLedgerServiceServer).GetFeeLedger(ctx, req.(*GetFeeLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FeeLedgerService_RecordFeePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordFeePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeeLedgerServiceServer).RecordFeePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/admin.feeledger.v1.FeeLedgerService/RecordFeePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeeLedgerServiceServer).RecordFeePayment(ctx, req.(*RecordFeePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}
