package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/v8"
	"github.com/clickmassa/volt-credit-middleware/internal/validator"
)

// TermoUseCase cobre o início do fluxo: criação, exibição, aceite e
// autorização do termo de consentimento.
type TermoUseCase struct {
	Gateway CreditGateway
	Persons PersonProvider
}

func NewTermoUseCase(gateway CreditGateway, persons PersonProvider) *TermoUseCase {
	return &TermoUseCase{Gateway: gateway, Persons: persons}
}

// CriarTermo valida o CPF, enriquece os dados do tomador e cria o termo de
// autorização na plataforma.
func (uc *TermoUseCase) CriarTermo(ctx context.Context, input CriarTermoRequest) (*CriarTermoResponse, error) {
	cpf, err := validator.ValidateCPF(input.Cpf)
	if err != nil {
		return nil, err
	}

	pessoa, err := uc.Persons.GetPersonData(ctx, cpf)
	if err != nil {
		return nil, err
	}

	ddd, numero, err := parseLocalPhone(input.Telefone)
	if err != nil {
		return nil, err
	}

	birthDate, err := birthDateFromCompact(pessoa.Nasc)
	if err != nil {
		return nil, err
	}

	genero := input.Genero
	if genero == "" {
		genero = "male"
	}
	if genero != "male" && genero != "female" {
		return nil, apperr.NewValidation("Gênero inválido: use male ou female")
	}

	termo, err := uc.Gateway.CreateTermo(ctx, v8.CreateTermoRequest{
		BorrowerDocumentNumber: cpf,
		SignerName:             pessoa.Nome,
		SignerEmail:            input.Email,
		SignerPhone: v8.PhoneNumber{
			CountryCode: "55",
			AreaCode:    ddd,
			PhoneNumber: numero,
		},
		BirthDate: birthDate,
		Gender:    genero,
		Provider:  "QI",
	})
	if err != nil {
		return nil, err
	}

	return &CriarTermoResponse{
		TermoID:  termo.ID,
		Status:   "sucesso",
		Mensagem: fmt.Sprintf("Termo criado com sucesso para %s. Aguardando autorização.", pessoa.Nome),
	}, nil
}

// ObterTermo devolve o HTML do termo para exibição/assinatura.
func (uc *TermoUseCase) ObterTermo(ctx context.Context, termoID string) (string, error) {
	if termoID == "" {
		return "", apperr.NewValidation("termo_id é obrigatório")
	}
	return uc.Gateway.GetTermo(ctx, termoID)
}

// AceitarTermo registra o aceite do termo pelo titular do CPF.
func (uc *TermoUseCase) AceitarTermo(ctx context.Context, termoID, cpf string) (string, error) {
	if termoID == "" {
		return "", apperr.NewValidation("termo_id é obrigatório")
	}
	cpfLimpo, err := validator.ValidateCPF(cpf)
	if err != nil {
		return "", err
	}
	return uc.Gateway.AcceptTermo(ctx, termoID, cpfLimpo)
}

// AutorizarTermo autoriza o termo e devolve a consulta de elegibilidade
// liberada pela autorização.
func (uc *TermoUseCase) AutorizarTermo(ctx context.Context, termoID string) (*AutorizarTermoResponse, error) {
	if termoID == "" {
		return nil, apperr.NewValidation("termo_id é obrigatório")
	}

	if _, err := uc.Gateway.AuthorizeTermo(ctx, termoID); err != nil {
		return nil, err
	}

	consulta, err := uc.Gateway.GetConsultData(ctx, termoID)
	if err != nil {
		return nil, err
	}

	log.Printf("[Termo] Termo autorizado! Margem disponível: R$ %s", consulta.MarginBaseValue)

	return &AutorizarTermoResponse{
		ConsultID:        consulta.ID,
		Nome:             consulta.Name,
		MargemDisponivel: consulta.MarginBaseValue,
		ParcelasMin:      consulta.SimulationLimit.InstallmentsMin,
		ParcelasMax:      consulta.SimulationLimit.InstallmentsMax,
		Status:           consulta.Status,
		Mensagem:         fmt.Sprintf("Termo autorizado! Margem disponível: R$ %s", consulta.MarginBaseValue),
	}, nil
}
