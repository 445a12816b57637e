package api

import (
	"net/http"

	"lane-booking/internal/domain/client"
	reqdto "lane-booking/internal/handler/dto/request"
	resdto "lane-booking/internal/handler/dto/response"
	"lane-booking/internal/handler/middleware"
	"lane-booking/internal/usecase/commands"
	"lane-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	cmds commands.ClientCommands
	q    queries.ClientQueries
}

func NewClientHandler(cmds commands.ClientCommands, q queries.ClientQueries) *ClientHandler {
	return &ClientHandler{cmds: cmds, q: q}
}

// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ClientResponse
// @Router /api/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]*resdto.ClientResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromClientView(v)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Client history
// @Description Reservations the client owns or joined as a guest, newest first, with per-status counts
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientHistoryResponse
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id}/history [get]
func (h *ClientHandler) History(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientHistoryView(view))
}

// @Summary Move client on the funnel board
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body reqdto.UpdateClientStageRequest true "Stage"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id}/stage [put]
func (h *ClientHandler) UpdateStage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateClientStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	updated, err := h.cmds.UpdateClientStage(c.Request.Context(), middleware.GetActor(c), id, client.FunnelStage(req.Stage))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClient(updated))
}
