package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/highconsult"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/v8"
)

func TestCriarTermoSuccess(t *testing.T) {
	gateway := new(MockCreditGateway)
	persons := new(MockPersonProvider)
	uc := NewTermoUseCase(gateway, persons)

	persons.On("GetPersonData", mock.Anything, "52998224725").Return(&highconsult.PersonData{
		Nome: "Fulano da Silva",
		Nasc: "19900515",
	}, nil)

	gateway.On("CreateTermo", mock.Anything, mock.MatchedBy(func(req v8.CreateTermoRequest) bool {
		return req.BorrowerDocumentNumber == "52998224725" &&
			req.SignerName == "Fulano da Silva" &&
			req.BirthDate == "1990-05-15" &&
			req.SignerPhone.CountryCode == "55" &&
			req.SignerPhone.AreaCode == "11" &&
			req.SignerPhone.PhoneNumber == "984353470" &&
			req.Gender == "male" &&
			req.Provider == "QI"
	})).Return(&v8.CreateTermoResponse{ID: "termo-1"}, nil)

	output, err := uc.CriarTermo(context.Background(), CriarTermoRequest{
		Cpf:      "529.982.247-25",
		Telefone: "11984353470",
		Email:    "fulano@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "termo-1", output.TermoID)
	assert.Equal(t, "sucesso", output.Status)
	assert.Contains(t, output.Mensagem, "Fulano da Silva")

	gateway.AssertExpectations(t)
	persons.AssertExpectations(t)
}

func TestCriarTermoInvalidCPF(t *testing.T) {
	uc := NewTermoUseCase(new(MockCreditGateway), new(MockPersonProvider))

	_, err := uc.CriarTermo(context.Background(), CriarTermoRequest{Cpf: "11111111111", Telefone: "11984353470"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestCriarTermoInvalidPhone(t *testing.T) {
	gateway := new(MockCreditGateway)
	persons := new(MockPersonProvider)
	uc := NewTermoUseCase(gateway, persons)

	persons.On("GetPersonData", mock.Anything, "52998224725").Return(&highconsult.PersonData{
		Nome: "Fulano da Silva",
		Nasc: "19900515",
	}, nil)

	_, err := uc.CriarTermo(context.Background(), CriarTermoRequest{Cpf: "52998224725", Telefone: "984353470"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	gateway.AssertNotCalled(t, "CreateTermo", mock.Anything, mock.Anything)
}

func TestCriarTermoInvalidGender(t *testing.T) {
	gateway := new(MockCreditGateway)
	persons := new(MockPersonProvider)
	uc := NewTermoUseCase(gateway, persons)

	persons.On("GetPersonData", mock.Anything, "52998224725").Return(&highconsult.PersonData{
		Nome: "Fulano da Silva",
		Nasc: "19900515",
	}, nil)

	_, err := uc.CriarTermo(context.Background(), CriarTermoRequest{
		Cpf:      "52998224725",
		Telefone: "11984353470",
		Genero:   "outro",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestObterTermoRequiresID(t *testing.T) {
	uc := NewTermoUseCase(new(MockCreditGateway), new(MockPersonProvider))

	_, err := uc.ObterTermo(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestAceitarTermoCleansCPF(t *testing.T) {
	gateway := new(MockCreditGateway)
	uc := NewTermoUseCase(gateway, new(MockPersonProvider))

	gateway.On("AcceptTermo", mock.Anything, "termo-1", "52998224725").Return("ok", nil)

	_, err := uc.AceitarTermo(context.Background(), "termo-1", "529.982.247-25")
	require.NoError(t, err)
	gateway.AssertExpectations(t)
}

func TestAutorizarTermoAuthorizesThenConsults(t *testing.T) {
	gateway := new(MockCreditGateway)
	uc := NewTermoUseCase(gateway, new(MockPersonProvider))

	gateway.On("AuthorizeTermo", mock.Anything, "termo-1").Return("autorizado", nil)
	gateway.On("GetConsultData", mock.Anything, "termo-1").Return(&v8.ConsultDataResponse{
		ID:              "termo-1",
		Name:            "Fulano da Silva",
		Status:          "authorized",
		MarginBaseValue: "350.50",
		SimulationLimit: v8.SimulationLimit{InstallmentsMin: 8, InstallmentsMax: 18},
	}, nil)

	output, err := uc.AutorizarTermo(context.Background(), "termo-1")
	require.NoError(t, err)
	assert.Equal(t, "termo-1", output.ConsultID)
	assert.Equal(t, "350.50", output.MargemDisponivel)
	assert.Equal(t, 8, output.ParcelasMin)
	assert.Equal(t, 18, output.ParcelasMax)
	assert.Contains(t, output.Mensagem, "350.50")

	gateway.AssertExpectations(t)
}

func TestAutorizarTermoAuthorizationFails(t *testing.T) {
	gateway := new(MockCreditGateway)
	uc := NewTermoUseCase(gateway, new(MockPersonProvider))

	gateway.On("AuthorizeTermo", mock.Anything, "termo-1").
		Return("", apperr.NewGateway("falha ao autorizar termo", 422, ""))

	_, err := uc.AutorizarTermo(context.Background(), "termo-1")
	require.Error(t, err)
	assert.True(t, apperr.IsGateway(err))
	gateway.AssertNotCalled(t, "GetConsultData", mock.Anything, mock.Anything)
}
