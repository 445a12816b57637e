package client

type FunnelStage string

const (
	StageNew         FunnelStage = "NOVO"
	StageNegotiation FunnelStage = "NEGOCIACAO"
	StageScheduled   FunnelStage = "AGENDADO"
	StageAfterSales  FunnelStage = "POS_VENDA"
	StageLost        FunnelStage = "PERDIDO"
)

var stageRank = map[FunnelStage]int{
	StageLost:        0,
	StageNew:         1,
	StageNegotiation: 2,
	StageScheduled:   3,
	StageAfterSales:  4,
}

func (s FunnelStage) String() string {
	return string(s)
}

func (s FunnelStage) IsValid() bool {
	_, ok := stageRank[s]
	return ok
}

func (s FunnelStage) rank() int {
	return stageRank[s]
}

const (
	TagNewLead        = "Lead novo"
	TagReturningGuest = "Cliente recorrente"
)
