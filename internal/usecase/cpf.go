package usecase

import (
	"context"

	"github.com/clickmassa/volt-credit-middleware/internal/validator"
)

// CpfUseCase cobre a consulta de CPF enriquecida pelo registro de pessoas.
type CpfUseCase struct {
	Persons PersonProvider
}

func NewCpfUseCase(persons PersonProvider) *CpfUseCase {
	return &CpfUseCase{Persons: persons}
}

func (uc *CpfUseCase) ConsultarCpf(ctx context.Context, cpf string) (*ConsultaCpfResponse, error) {
	cpfLimpo, err := validator.ValidateCPF(cpf)
	if err != nil {
		return nil, err
	}

	pessoa, err := uc.Persons.GetPersonData(ctx, cpfLimpo)
	if err != nil {
		return nil, err
	}

	return &ConsultaCpfResponse{
		Cpf:    validator.FormatCPF(cpfLimpo),
		Nome:   pessoa.Nome,
		Status: "ativo",
	}, nil
}
