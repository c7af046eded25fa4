package usecase

import (
	"context"
	"log"
	"strconv"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/v8"
)

// Parcelamentos candidatos oferecidos ao tomador. Cada um só é simulado se
// couber nos limites da consulta.
var parcelasDisponiveis = []int{6, 8, 10, 12, 18, 24}

type SimulacaoUseCase struct {
	Gateway CreditGateway
}

func NewSimulacaoUseCase(gateway CreditGateway) *SimulacaoUseCase {
	return &SimulacaoUseCase{Gateway: gateway}
}

// GerarSimulacoes busca a consulta autorizada, filtra os parcelamentos
// candidatos pelos limites dela e cria uma simulação por parcelamento.
// Falha individual é tolerada; se nenhuma simulação sair, o estágio falha.
func (uc *SimulacaoUseCase) GerarSimulacoes(ctx context.Context, consultID string) ([]SimulacaoResumo, error) {
	if consultID == "" {
		return nil, apperr.NewValidation("consult_id é obrigatório")
	}

	consulta, err := uc.Gateway.GetConsultData(ctx, consultID)
	if err != nil {
		return nil, err
	}

	valorParcela, err := installmentFaceValue(consulta)
	if err != nil {
		return nil, err
	}

	min := consulta.SimulationLimit.InstallmentsMin
	max := consulta.SimulationLimit.InstallmentsMax
	configID := uc.Gateway.ConfigID()

	var simulacoes []SimulacaoResumo
	for _, parcelas := range parcelasDisponiveis {
		if parcelas < min || parcelas > max {
			log.Printf("[Simulação] Pulando %d parcelas (fora dos limites %d..%d)", parcelas, min, max)
			continue
		}

		sim, err := uc.Gateway.CreateSimulation(ctx, v8.CreateSimulationRequest{
			ConsultID:            consultID,
			NumberOfInstallments: parcelas,
			InstallmentFaceValue: valorParcela,
			ConfigID:             configID,
		})
		if err != nil {
			log.Printf("[Simulação] Falha ao simular %dx: %v", parcelas, err)
			continue
		}

		simulacoes = append(simulacoes, SimulacaoResumo{
			Parcelas:        sim.NumberOfInstallments,
			ValorParcela:    sim.InstallmentValue,
			ValorTotal:      sim.OperationAmount,
			ValorLiberado:   sim.DisbursementAmount,
			TaxaJurosMensal: sim.MonthlyInterestRate,
			PrimeiraParcela: sim.FirstInstallmentDate,
			SimulationID:    sim.IDSimulation,
		})
	}

	if len(simulacoes) == 0 {
		return nil, apperr.NewGateway("Nenhuma simulação foi gerada", 0, "")
	}

	log.Printf("[Simulação] Total de %d simulações geradas", len(simulacoes))
	return simulacoes, nil
}

// O valor de face da parcela vem da própria consulta: primeiro o valor
// recomendado pela plataforma, senão a margem base.
func installmentFaceValue(consulta *v8.ConsultDataResponse) (float64, error) {
	if v, err := strconv.ParseFloat(consulta.RecommendedSimulationInstallmentValue, 64); err == nil && v > 0 {
		return v, nil
	}
	if v, err := strconv.ParseFloat(consulta.MarginBaseValue, 64); err == nil && v > 0 {
		return v, nil
	}
	return 0, apperr.NewGateway("consulta sem valor de parcela utilizável", 0, "")
}
