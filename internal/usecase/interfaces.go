package usecase

import (
	"context"

	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/highconsult"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/v8"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/viacep"
)

// CreditGateway é a fachada sobre a plataforma de originação (V8).
type CreditGateway interface {
	CreateTermo(ctx context.Context, request v8.CreateTermoRequest) (*v8.CreateTermoResponse, error)
	GetTermo(ctx context.Context, termoID string) (string, error)
	AcceptTermo(ctx context.Context, termoID, cpf string) (string, error)
	AuthorizeTermo(ctx context.Context, termoID string) (string, error)
	GetConsultData(ctx context.Context, consultID string) (*v8.ConsultDataResponse, error)
	CreateSimulation(ctx context.Context, request v8.CreateSimulationRequest) (*v8.SimulationResponse, error)
	CreateOperation(ctx context.Context, request v8.CreateOperationRequest) (*v8.CreateOperationResponse, error)
	GetOperation(ctx context.Context, operationID string) (*v8.OperationResponse, error)
	ConfigID() string
}

// PersonProvider enriquece dados cadastrais pelo CPF.
type PersonProvider interface {
	GetPersonData(ctx context.Context, cpf string) (*highconsult.PersonData, error)
}

// AddressProvider enriquece endereço pelo CEP.
type AddressProvider interface {
	GetAddress(ctx context.Context, cep string) (*viacep.Address, error)
}
