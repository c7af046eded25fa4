package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/v8"
	"github.com/clickmassa/volt-credit-middleware/internal/validator"
)

type PropostaUseCase struct {
	Gateway   CreditGateway
	Persons   PersonProvider
	Addresses AddressProvider
}

func NewPropostaUseCase(gateway CreditGateway, persons PersonProvider, addresses AddressProvider) *PropostaUseCase {
	return &PropostaUseCase{Gateway: gateway, Persons: persons, Addresses: addresses}
}

// CriarProposta monta o tomador completo (consulta V8 + registro de pessoa +
// endereço pelo CEP do registro) e cria a operação a partir da simulação
// escolhida. O CEP usado na busca de endereço é SEMPRE o do registro de
// pessoa, nunca um CEP informado pelo chamador.
func (uc *PropostaUseCase) CriarProposta(ctx context.Context, input CriarPropostaRequest) (*CriarPropostaResponse, error) {
	cpf, err := validator.ValidateCPF(input.Cpf)
	if err != nil {
		return nil, err
	}

	if input.ConsultID == "" {
		return nil, apperr.NewValidation("consult_id é obrigatório")
	}
	if input.SimulationID == "" {
		return nil, apperr.NewValidation("simulation_id é obrigatório")
	}
	if strings.TrimSpace(input.NumeroEndereco) == "" {
		return nil, apperr.NewValidation("numero_endereco é obrigatório")
	}

	if _, err := validator.ValidatePixKey(input.ChavePix, input.TipoChavePix); err != nil {
		return nil, err
	}

	consulta, err := uc.Gateway.GetConsultData(ctx, input.ConsultID)
	if err != nil {
		return nil, err
	}

	pessoa, err := uc.Persons.GetPersonData(ctx, cpf)
	if err != nil {
		return nil, err
	}

	// O CEP do registro de pessoa alimenta a busca de endereço: dependência
	// real entre as duas consultas, a segunda só pode partir da primeira.
	endereco, err := uc.Addresses.GetAddress(ctx, pessoa.CEP)
	if err != nil {
		return nil, err
	}

	countryCode, ddd, numero, err := parseFullPhone(consulta.PhoneNumber)
	if err != nil {
		return nil, err
	}

	birthDate, err := birthDateFromCompact(pessoa.Nasc)
	if err != nil {
		return nil, err
	}

	operacao, err := uc.Gateway.CreateOperation(ctx, v8.CreateOperationRequest{
		Borrower: v8.Borrower{
			Name:  consulta.Name,
			Email: input.Email,
			Phone: v8.BorrowerPhone{
				CountryCode: countryCode,
				AreaCode:    ddd,
				Number:      numero,
			},
			PoliticalExposition: false,
			Address: v8.BorrowerAddress{
				PostalCode:   strings.ReplaceAll(endereco.CEP, "-", ""),
				City:         endereco.Localidade,
				State:        endereco.UF,
				Number:       input.NumeroEndereco,
				Street:       endereco.Logradouro,
				Complement:   endereco.Complemento,
				Neighborhood: endereco.Bairro,
			},
			BirthDate:                    birthDate,
			MotherName:                   pessoa.Mae,
			Nationality:                  "Brasileiro",
			Gender:                       consulta.Gender,
			PersonType:                   "natural",
			MaritalStatus:                defaultIfEmpty(input.EstadoCivil, "single"),
			IndividualDocumentNumber:     cpf,
			DocumentIdentificationDate:   defaultIfEmpty(input.DataDocumento, "2010-10-10"),
			DocumentIssuer:               defaultIfEmpty(input.OrgaoEmissor, "SSP"),
			DocumentIdentificationType:   defaultIfEmpty(input.TipoDocumento, "rg"),
			DocumentIdentificationNumber: defaultIfEmpty(input.NumeroDocumento, cpf),
			Bank: v8.BorrowerBank{
				TransferMethod: "pix",
				PixKey:         input.ChavePix,
				PixKeyType:     input.TipoChavePix,
			},
			WorkData: v8.WorkData{
				EmployerName:           consulta.EmployerName,
				EmployerDocumentNumber: consulta.EmployerDocumentNumber,
				RegistrationNumber:     consulta.RegistrationNumber,
			},
		},
		SimulationID: input.SimulationID,
	})
	if err != nil {
		return nil, err
	}

	return &CriarPropostaResponse{
		OperationID:      operacao.ID,
		FormalizationURL: operacao.FormalizationURL,
		Status:           "sucesso",
		Mensagem:         "Proposta criada com sucesso! Acesse o link para formalizar.",
	}, nil
}

// ConsultarOperacao devolve o status atual da operação, como reportado pela
// plataforma.
func (uc *PropostaUseCase) ConsultarOperacao(ctx context.Context, operationID string) (*ConsultarOperacaoResponse, error) {
	if operationID == "" {
		return nil, apperr.NewValidation("id da operação é obrigatório")
	}

	operacao, err := uc.Gateway.GetOperation(ctx, operationID)
	if err != nil {
		appErr := apperr.From(err)
		if appErr.Code == apperr.CodeGateway && appErr.UpstreamStatus == 404 {
			return nil, apperr.NewNotFound("Operação não encontrada")
		}
		return nil, err
	}

	log.Printf("[Proposta] Operação %s consultada com status: %s", operacao.ID, operacao.Status)

	return &ConsultarOperacaoResponse{
		OperationID: operacao.ID,
		Status:      operacao.Status,
		Provider:    operacao.Provider,
		Mensagem:    "Operação consultada com sucesso",
	}, nil
}

func defaultIfEmpty(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
