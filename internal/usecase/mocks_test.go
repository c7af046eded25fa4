package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/highconsult"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/v8"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/viacep"
)

type MockCreditGateway struct {
	mock.Mock
}

func (m *MockCreditGateway) CreateTermo(ctx context.Context, request v8.CreateTermoRequest) (*v8.CreateTermoResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*v8.CreateTermoResponse), args.Error(1)
}

func (m *MockCreditGateway) GetTermo(ctx context.Context, termoID string) (string, error) {
	args := m.Called(ctx, termoID)
	return args.String(0), args.Error(1)
}

func (m *MockCreditGateway) AcceptTermo(ctx context.Context, termoID, cpf string) (string, error) {
	args := m.Called(ctx, termoID, cpf)
	return args.String(0), args.Error(1)
}

func (m *MockCreditGateway) AuthorizeTermo(ctx context.Context, termoID string) (string, error) {
	args := m.Called(ctx, termoID)
	return args.String(0), args.Error(1)
}

func (m *MockCreditGateway) GetConsultData(ctx context.Context, consultID string) (*v8.ConsultDataResponse, error) {
	args := m.Called(ctx, consultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*v8.ConsultDataResponse), args.Error(1)
}

func (m *MockCreditGateway) CreateSimulation(ctx context.Context, request v8.CreateSimulationRequest) (*v8.SimulationResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*v8.SimulationResponse), args.Error(1)
}

func (m *MockCreditGateway) CreateOperation(ctx context.Context, request v8.CreateOperationRequest) (*v8.CreateOperationResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*v8.CreateOperationResponse), args.Error(1)
}

func (m *MockCreditGateway) GetOperation(ctx context.Context, operationID string) (*v8.OperationResponse, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*v8.OperationResponse), args.Error(1)
}

func (m *MockCreditGateway) ConfigID() string {
	args := m.Called()
	return args.String(0)
}

type MockPersonProvider struct {
	mock.Mock
}

func (m *MockPersonProvider) GetPersonData(ctx context.Context, cpf string) (*highconsult.PersonData, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*highconsult.PersonData), args.Error(1)
}

type MockAddressProvider struct {
	mock.Mock
}

func (m *MockAddressProvider) GetAddress(ctx context.Context, cep string) (*viacep.Address, error) {
	args := m.Called(ctx, cep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viacep.Address), args.Error(1)
}
