package request

type UpdateClientStageRequest struct {
	Stage string `json:"stage" binding:"required,oneof=NOVO NEGOCIACAO AGENDADO POS_VENDA PERDIDO"`
}
