//go:build unit

package client_test

import (
	"testing"
	"time"

	"lane-booking/internal/domain/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"(21) 99999-9999", "21999999999"},
		{"+55 21 99999-9999", "21999999999"},
		{"5521999999999", "21999999999"},
		{"0055 21 3333-4444", "2133334444"},
		{"(021) 99999-9999", "21999999999"},
		{"021 3333-4444", "2133334444"},
		{"55999", "55999"},
		{"abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, client.NormalizePhone(tt.raw))
		})
	}

	assert.True(t, client.SamePhone("(21) 99999-9999", "+5521999999999"))
	assert.True(t, client.SamePhone("(021) 99999-9999", "21 99999 9999"))
	assert.False(t, client.SamePhone("", ""))
}

func TestNewClient(t *testing.T) {
	c, err := client.NewClient(" Ana ", "(21) 99999-9999", "", now)
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name())
	assert.Equal(t, client.StageNew, c.FunnelStage())
	assert.Equal(t, []string{client.TagNewLead}, c.Tags())
	assert.Equal(t, "21999999999", c.NormalizedPhone())

	_, err = client.NewClient("", "2199", "", now)
	assert.ErrorIs(t, err, client.ErrNameRequired)
	_, err = client.NewClient("Ana", "--", "", now)
	assert.ErrorIs(t, err, client.ErrPhoneRequired)
}

func TestClientTags(t *testing.T) {
	c, err := client.NewClient("Ana", "21999999999", "", now)
	require.NoError(t, err)

	c.AddTag(client.TagReturningGuest)
	c.AddTag("cliente recorrente")
	assert.Equal(t, []string{client.TagNewLead, client.TagReturningGuest}, c.Tags())
	assert.True(t, c.HasTag("LEAD NOVO"))
}

func TestAdvanceTo(t *testing.T) {
	tests := []struct {
		name    string
		from    client.FunnelStage
		to      client.FunnelStage
		changed bool
		want    client.FunnelStage
	}{
		{"new to negotiation", client.StageNew, client.StageNegotiation, true, client.StageNegotiation},
		{"negotiation to scheduled", client.StageNegotiation, client.StageScheduled, true, client.StageScheduled},
		{"never moves back", client.StageScheduled, client.StageNegotiation, false, client.StageScheduled},
		{"after sales stays", client.StageAfterSales, client.StageScheduled, false, client.StageAfterSales},
		{"lost is revived", client.StageLost, client.StageNegotiation, true, client.StageNegotiation},
		{"same stage", client.StageNegotiation, client.StageNegotiation, false, client.StageNegotiation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := client.ReconstructClient(client.ReconstructParams{Name: "Ana", Phone: "21999999999", FunnelStage: tt.from})
			changed, err := c.AdvanceTo(tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.want, c.FunnelStage())
		})
	}

	c := client.ReconstructClient(client.ReconstructParams{FunnelStage: client.StageNew})
	_, err := c.AdvanceTo("GANHO")
	assert.ErrorIs(t, err, client.ErrInvalidStage)
	assert.ErrorIs(t, c.SetStage(""), client.ErrInvalidStage)
	require.NoError(t, c.SetStage(client.StageLost))
	assert.Equal(t, client.StageLost, c.FunnelStage())
}
