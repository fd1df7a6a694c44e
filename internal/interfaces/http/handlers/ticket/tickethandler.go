package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yordam/internal/application/ticket/usecases"
	"yordam/internal/interfaces/http/middleware"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	changeStatusUC   usecases.ChangeStatusExecutor
	assignTicketUC   usecases.AssignTicketExecutor
	takeTicketUC     usecases.TakeTicketExecutor
	rateTicketUC     usecases.RateTicketExecutor
	reopenTicketUC   usecases.ReopenTicketExecutor
	sendMessageUC    usecases.SendMessageExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	listUnassignedUC usecases.ListUnassignedExecutor
	quickStatsUC     usecases.QuickStatsExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	takeTicketUC usecases.TakeTicketExecutor,
	rateTicketUC usecases.RateTicketExecutor,
	reopenTicketUC usecases.ReopenTicketExecutor,
	sendMessageUC usecases.SendMessageExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listUnassignedUC usecases.ListUnassignedExecutor,
	quickStatsUC usecases.QuickStatsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		changeStatusUC:   changeStatusUC,
		assignTicketUC:   assignTicketUC,
		takeTicketUC:     takeTicketUC,
		rateTicketUC:     rateTicketUC,
		reopenTicketUC:   reopenTicketUC,
		sendMessageUC:    sendMessageUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		listUnassignedUC: listUnassignedUC,
		quickStatsUC:     quickStatsUC,
		logger:           logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(middleware.UserIDFrom(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		Actor:    middleware.AccessFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.Actor = middleware.AccessFrom(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// ListUnassigned handles GET /tickets/queue
func (h *TicketHandler) ListUnassigned(c *gin.Context) {
	query := usecases.ListUnassignedQuery{
		TechnicianID: middleware.UserIDFrom(c),
	}
	query.Page, query.PageSize = parsePageQuery(c)

	result, err := h.listUnassignedUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// QuickStats handles GET /tickets/stats
func (h *TicketHandler) QuickStats(c *gin.Context) {
	stats, err := h.quickStatsUC.Execute(c.Request.Context(), usecases.QuickStatsQuery{
		Actor: middleware.AccessFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", QuickStatsResponse{
		Total:      stats.Total,
		Unassigned: stats.Unassigned,
		InProgress: stats.InProgress,
		Resolved:   stats.Resolved,
		AvgRating:  stats.AvgRating,
	})
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		Actor:     middleware.AccessFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
		Actor:      middleware.AccessFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned", result)
}

// TakeTicket handles POST /tickets/:id/take
func (h *TicketHandler) TakeTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.takeTicketUC.Execute(c.Request.Context(), usecases.TakeTicketCommand{
		TicketID:     ticketID,
		TechnicianID: middleware.UserIDFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket taken", result)
}

// RateTicket handles POST /tickets/:id/rate
func (h *TicketHandler) RateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.rateTicketUC.Execute(c.Request.Context(), usecases.RateTicketCommand{
		TicketID: ticketID,
		UserID:   middleware.UserIDFrom(c),
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket rated", result)
}

// ReopenTicket handles POST /tickets/:id/reopen
func (h *TicketHandler) ReopenTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReopenTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.reopenTicketUC.Execute(c.Request.Context(), usecases.ReopenTicketCommand{
		TicketID: ticketID,
		UserID:   middleware.UserIDFrom(c),
		Reason:   req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket reopened", result)
}

// SendMessage handles POST /tickets/:id/messages
func (h *TicketHandler) SendMessage(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.sendMessageUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		TicketID:   ticketID,
		Text:       req.Text,
		Attachment: req.Attachment.toDomain(),
		Actor:      middleware.AccessFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent")
}
