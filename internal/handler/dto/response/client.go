package response

import (
	"time"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClientResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Tags          []string  `json:"tags"`
	FunnelStage   string    `json:"funnelStage"`
	CreatedAt     time.Time `json:"createdAt"`
	LastContactAt time.Time `json:"lastContactAt"`
}

func FromClientView(v *queries.ClientView) *ClientResponse {
	resp := &ClientResponse{}
	_ = copier.Copy(resp, v)
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}

func FromClient(c *client.Client) *ClientResponse {
	return FromClientView(queries.NewClientView(c))
}

type HistoryCountsResponse struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	NoShow    int `json:"noShow"`
}

type ClientHistoryResponse struct {
	Client       *ClientResponse        `json:"client"`
	Reservations []*ReservationResponse `json:"reservations"`
	Counts       HistoryCountsResponse  `json:"counts"`
	LaneHours    int                    `json:"laneHours"`
	SpentCents   int64                  `json:"spentCents"`
}

func FromClientHistoryView(v *queries.ClientHistoryView) *ClientHistoryResponse {
	resp := &ClientHistoryResponse{
		Client:       FromClientView(v.Client),
		Reservations: FromReservationViews(v.Reservations),
		LaneHours:    v.LaneHours,
		SpentCents:   v.SpentCents,
	}
	_ = copier.Copy(&resp.Counts, &v.Counts)
	return resp
}
