package usecase

// DTOs da superfície HTTP voltada ao chatbot. Os nomes de campo são contrato
// com o front-end — manter em português.

// CPF

type ValidarCpfRequest struct {
	Cpf string `json:"cpf"`
}

type ValidarCpfResponse struct {
	Valido       bool   `json:"valido"`
	CpfFormatado string `json:"cpf_formatado,omitempty"`
	Mensagem     string `json:"mensagem"`
}

type ConsultaCpfRequest struct {
	Cpf string `json:"cpf"`
}

type ConsultaCpfResponse struct {
	Cpf    string `json:"cpf"`
	Nome   string `json:"nome"`
	Status string `json:"status"`
}

// PIX

type ValidarPixRequest struct {
	Cpf       string `json:"cpf"`
	ChavePix  string `json:"chave_pix"`
	TipoChave string `json:"tipo_chave"`
}

type ValidarPixResponse struct {
	Valida         bool   `json:"valida"`
	TipoChave      string `json:"tipo_chave"`
	ChaveFormatada string `json:"chave_formatada,omitempty"`
	Mensagem       string `json:"mensagem"`
}

// TERMO

type CriarTermoRequest struct {
	Cpf      string `json:"cpf"`
	Telefone string `json:"telefone"` // formato: 11984353470
	Email    string `json:"email"`
	Genero   string `json:"genero,omitempty"` // "male"/"female"; default "male"
}

type CriarTermoResponse struct {
	TermoID  string `json:"termo_id"`
	Status   string `json:"status"`
	Mensagem string `json:"mensagem"`
}

type AceitarTermoRequest struct {
	TermoID string `json:"termo_id"`
	Cpf     string `json:"cpf"`
}

type AutorizarTermoRequest struct {
	TermoID string `json:"termo_id"`
}

type AutorizarTermoResponse struct {
	ConsultID        string `json:"consult_id"`
	Nome             string `json:"nome"`
	MargemDisponivel string `json:"margem_disponivel"`
	ParcelasMin      int    `json:"parcelas_min"`
	ParcelasMax      int    `json:"parcelas_max"`
	Status           string `json:"status"`
	Mensagem         string `json:"mensagem"`
}

// SIMULAÇÃO

type GerarSimulacoesRequest struct {
	ConsultID string `json:"consult_id"`
}

type SimulacaoResumo struct {
	Parcelas        int     `json:"parcelas"`
	ValorParcela    float64 `json:"valor_parcela"`
	ValorTotal      float64 `json:"valor_total"`
	ValorLiberado   float64 `json:"valor_liberado"`
	TaxaJurosMensal float64 `json:"taxa_juros_mensal"`
	PrimeiraParcela string  `json:"primeira_parcela"`
	SimulationID    string  `json:"simulation_id"`
}

type GerarSimulacoesResponse struct {
	Simulacoes []SimulacaoResumo `json:"simulacoes"`
	Status     string            `json:"status"`
	Mensagem   string            `json:"mensagem"`
}

// PROPOSTA

type CriarPropostaRequest struct {
	Cpf            string `json:"cpf"`
	ConsultID      string `json:"consult_id"`
	SimulationID   string `json:"simulation_id"`
	Email          string `json:"email"`
	NumeroEndereco string `json:"numero_endereco"`
	ChavePix       string `json:"chave_pix"`
	TipoChavePix   string `json:"tipo_chave_pix"` // "cpf", "phone", "email", "random"

	// Campos do documento do tomador; quando omitidos valem os defaults
	// históricos do fluxo.
	EstadoCivil     string `json:"estado_civil,omitempty"`     // default "single"
	DataDocumento   string `json:"data_documento,omitempty"`   // default "2010-10-10"
	OrgaoEmissor    string `json:"orgao_emissor,omitempty"`    // default "SSP"
	TipoDocumento   string `json:"tipo_documento,omitempty"`   // default "rg"
	NumeroDocumento string `json:"numero_documento,omitempty"` // default: o próprio CPF
}

type CriarPropostaResponse struct {
	OperationID      string `json:"operation_id"`
	FormalizationURL string `json:"formalization_url"`
	Status           string `json:"status"`
	Mensagem         string `json:"mensagem"`
}

// OPERAÇÃO

type ConsultarOperacaoResponse struct {
	OperationID string `json:"operation_id"`
	Status      string `json:"status"`
	Provider    string `json:"provider"`
	Mensagem    string `json:"mensagem"`
}
