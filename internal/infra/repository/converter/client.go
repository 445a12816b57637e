package converter

import (
	"lane-booking/internal/domain/client"
	"lane-booking/internal/infra/pgq"
)

func ClientToInfra(c *client.Client) pgq.Client {
	tags := c.Tags()
	if tags == nil {
		tags = []string{}
	}
	return pgq.Client{
		ID:            c.ID(),
		Name:          c.Name(),
		Phone:         c.Phone(),
		PhoneDigits:   c.NormalizedPhone(),
		Email:         c.Email(),
		Tags:          tags,
		FunnelStage:   c.FunnelStage().String(),
		CreatedAt:     c.CreatedAt(),
		LastContactAt: c.LastContactAt(),
	}
}

func ClientToDomain(row pgq.Client) *client.Client {
	return client.ReconstructClient(client.ReconstructParams{
		ID:            row.ID,
		Name:          row.Name,
		Phone:         row.Phone,
		Email:         row.Email,
		Tags:          row.Tags,
		FunnelStage:   client.FunnelStage(row.FunnelStage),
		CreatedAt:     row.CreatedAt,
		LastContactAt: row.LastContactAt,
	})
}
