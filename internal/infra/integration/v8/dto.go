package v8

// Os payloads de termo e consulta usam camelCase; simulação e operação usam
// snake_case. O contrato do V8 é assim mesmo — não uniformizar.

// TERMO DE AUTORIZAÇÃO

type PhoneNumber struct {
	CountryCode string `json:"countryCode"`
	AreaCode    string `json:"areaCode"`
	PhoneNumber string `json:"phoneNumber"`
}

type CreateTermoRequest struct {
	BorrowerDocumentNumber string      `json:"borrowerDocumentNumber"`
	SignerName             string      `json:"signerName"`
	SignerEmail            string      `json:"signerEmail"`
	SignerPhone            PhoneNumber `json:"signerPhone"`
	BirthDate              string      `json:"birthDate"` // YYYY-MM-DD
	Gender                 string      `json:"gender"`    // "male" ou "female"
	Provider               string      `json:"provider"`  // "QI"
}

type CreateTermoResponse struct {
	ID string `json:"id"`
}

// CONSULTA APÓS AUTORIZAÇÃO

type SimulationLimit struct {
	MonthMin        int     `json:"monthMin"`
	MonthMax        int     `json:"monthMax"`
	InstallmentsMin int     `json:"installmentsMin"`
	InstallmentsMax int     `json:"installmentsMax"`
	ValueMin        float64 `json:"valueMin"`
	ValueMax        float64 `json:"valueMax"`
}

type ConsultDataResponse struct {
	ID                                     string          `json:"id"`
	Status                                 string          `json:"status"`
	PartnerID                              string          `json:"partnerId"`
	CreatedAt                              string          `json:"createdAt"`
	UpdatedAt                              string          `json:"updatedAt"`
	DocumentNumber                         string          `json:"documentNumber"`
	Name                                   string          `json:"name"`
	PartnerInternalID                      string          `json:"partnerInternalId"`
	BirthDate                              string          `json:"birthDate"`
	Gender                                 string          `json:"gender"`
	PhoneNumber                            string          `json:"phoneNumber"`
	Description                            string          `json:"description,omitempty"`
	MarginBaseValue                        string          `json:"marginBaseValue"`
	ConsultEligible                        bool            `json:"consultEligible"`
	AdmissionDate                          string          `json:"admissionDate,omitempty"`
	TerminationDate                        string          `json:"terminationDate,omitempty"`
	EmployerDocumentNumber                 string          `json:"employerDocumentNumber"`
	EmployerName                           string          `json:"employerName"`
	WorkerCategoryCode                     int             `json:"workerCategoryCode"`
	RegistrationNumber                     string          `json:"registrationNumber"`
	AdmissionDateMonthsDifference          int             `json:"admissionDateMonthsDifference"`
	SimulationLimit                        SimulationLimit `json:"simulationLimit"`
	RecommendedSimulationInstallmentValue  string          `json:"recommendedSimulationInstallmentValue"`
}

// SIMULAÇÃO

type CreateSimulationRequest struct {
	ConsultID            string  `json:"consult_id"`
	NumberOfInstallments int     `json:"number_of_installments"`
	InstallmentFaceValue float64 `json:"installment_face_value"`
	ConfigID             string  `json:"config_id"`
}

type DisbursementOption struct {
	IOFAmount float64 `json:"iof_amount"`
}

type SimulationResponse struct {
	IDSimulation         string             `json:"id_simulation"`
	InstallmentValue     float64            `json:"installment_value"`
	NumberOfInstallments int                `json:"number_of_installments"`
	OperationAmount      float64            `json:"operation_amount"`
	IssueAmount          float64            `json:"issue_amount"`
	DisbursementOption   DisbursementOption `json:"disbursement_option"`
	IOFAmount            float64            `json:"iof_amount"`
	MonthlyInterestRate  float64            `json:"monthly_interest_rate"`
	DisbursedIssueAmount float64            `json:"disbursed_issue_amount"`
	DisbursementAmount   float64            `json:"disbursement_amount"`
	FirstInstallmentDate string             `json:"first_installment_date"`
	IsInsured            bool               `json:"is_insured"`
	InsuranceAmount      *float64           `json:"insurance_amount"`
	Provider             string             `json:"provider"`
	SimulationConfigID   string             `json:"simulation_config_id"`
	SimulationConfigSlug string             `json:"simulation_config_slug"`
}

// OPERAÇÃO/PROPOSTA

type BorrowerPhone struct {
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code"`
	Number      string `json:"number"`
}

type BorrowerAddress struct {
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
	State        string `json:"state"`
	Number       string `json:"number"`
	Street       string `json:"street"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
}

type BorrowerBank struct {
	TransferMethod string `json:"transfer_method"` // "pix"
	PixKey         string `json:"pix_key"`
	PixKeyType     string `json:"pix_key_type"` // "cpf", "phone", "email", "random"
}

type WorkData struct {
	EmployerName           string `json:"employer_name"`
	EmployerDocumentNumber string `json:"employer_document_number"`
	RegistrationNumber     string `json:"registration_number"`
}

type Borrower struct {
	Name                         string          `json:"name"`
	Email                        string          `json:"email"`
	Phone                        BorrowerPhone   `json:"phone"`
	PoliticalExposition          bool            `json:"political_exposition"`
	Address                      BorrowerAddress `json:"address"`
	BirthDate                    string          `json:"birth_date"` // YYYY-MM-DD
	MotherName                   string          `json:"mother_name"`
	Nationality                  string          `json:"nationality"`
	Gender                       string          `json:"gender"`
	PersonType                   string          `json:"person_type"` // "natural"
	MaritalStatus                string          `json:"marital_status"`
	IndividualDocumentNumber     string          `json:"individual_document_number"`
	DocumentIdentificationDate   string          `json:"document_identification_date"`
	DocumentIssuer               string          `json:"document_issuer"`
	DocumentIdentificationType   string          `json:"document_identification_type"`
	DocumentIdentificationNumber string          `json:"document_identification_number"`
	Bank                         BorrowerBank    `json:"bank"`
	WorkData                     WorkData        `json:"work_data"`
}

type CreateOperationRequest struct {
	Borrower     Borrower `json:"borrower"`
	SimulationID string   `json:"simulation_id"`
}

type CreateOperationResponse struct {
	ID               string `json:"id"`
	FormalizationURL string `json:"formalization_url"`
}

type OperationResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Provider string `json:"provider"`
}
