package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/helpdesk-service/internal/errs"
	"github.com/psds-microservice/helpdesk-service/internal/kafka"
	"github.com/psds-microservice/helpdesk-service/internal/model"
	"github.com/psds-microservice/helpdesk-service/internal/searchindex"
	"github.com/psds-microservice/helpdesk-service/internal/service"
)

// TicketHandler отдаёт ответы в конверте {success, data?, message?, count?, error?}.
// Клиенты (board/list) различают только success и message, остальное — полезная нагрузка.
type TicketHandler struct {
	svc      service.TicketServicer
	producer kafka.TicketEventProducer
	search   *searchindex.Client
}

func NewTicketHandler(svc service.TicketServicer, producer kafka.TicketEventProducer, search *searchindex.Client) *TicketHandler {
	return &TicketHandler{svc: svc, producer: producer, search: search}
}

func fail(c *gin.Context, code int, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(code, body)
}

type createTicketRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	ContactInformation string `json:"contact_information"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid body", err)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.ContactInformation = strings.TrimSpace(req.ContactInformation)
	if req.Title == "" || req.Description == "" || req.ContactInformation == "" {
		fail(c, http.StatusBadRequest, "Missing required fields: title, description, contact_information", nil)
		return
	}
	if err := model.ValidateNewTicket(req.Title, req.Description, req.ContactInformation); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ticket := &model.Ticket{
		Title:              req.Title,
		Description:        req.Description,
		ContactInformation: req.ContactInformation,
	}
	if err := h.svc.Create(c.Request.Context(), ticket); err != nil {
		fail(c, http.StatusInternalServerError, "Error creating ticket", err)
		return
	}
	h.publishEvent(kafka.EventTicketCreated, ticket)
	h.search.IndexTicketAsync(ticket)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Ticket created successfully",
		"data":    ticket,
	})
}

func (h *TicketHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrTicketNotFound) {
			fail(c, http.StatusNotFound, "Ticket not found", nil)
			return
		}
		fail(c, http.StatusInternalServerError, "Error fetching ticket", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": t})
}

func (h *TicketHandler) List(c *gin.Context) {
	status := c.Query("status")
	sortBy := c.DefaultQuery("sortBy", "updated_at")
	order := c.DefaultQuery("order", "DESC")

	items, err := h.svc.List(c.Request.Context(), status, sortBy, order)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching tickets", err)
		return
	}
	if items == nil {
		items = []model.Ticket{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

type updateTicketRequest struct {
	Title              *string `json:"title,omitempty"`
	Description        *string `json:"description,omitempty"`
	ContactInformation *string `json:"contact_information,omitempty"`
	Status             *string `json:"status,omitempty"`
}

func (h *TicketHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid body", err)
		return
	}
	if req.Status != nil && !model.TicketStatus(*req.Status).Valid() {
		fail(c, http.StatusBadRequest, "Invalid status. Must be: pending, accepted, resolved, or rejected", nil)
		return
	}
	// Пустые после trim значения игнорируются, как в исходном API.
	changes := make(map[string]interface{})
	if req.Title != nil {
		if v := strings.TrimSpace(*req.Title); v != "" {
			changes["title"] = v
		}
	}
	if req.Description != nil {
		if v := strings.TrimSpace(*req.Description); v != "" {
			changes["description"] = v
		}
	}
	if req.ContactInformation != nil {
		if v := strings.TrimSpace(*req.ContactInformation); v != "" {
			changes["contact_information"] = v
		}
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if len(changes) == 0 {
		fail(c, http.StatusBadRequest, "No data provided for update", nil)
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, changes)
	if err != nil {
		if errors.Is(err, errs.ErrTicketNotFound) {
			fail(c, http.StatusNotFound, "Ticket not found", nil)
			return
		}
		fail(c, http.StatusInternalServerError, "Error updating ticket", err)
		return
	}
	h.publishEvent(kafka.EventTicketUpdated, t)
	h.search.IndexTicketAsync(t)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Ticket updated successfully",
		"data":    t,
	})
}

func (h *TicketHandler) Stats(c *gin.Context) {
	counts, err := h.svc.StatusCounts(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching ticket stats", err)
		return
	}
	if counts == nil {
		counts = []service.StatusCount{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": counts})
}

func (h *TicketHandler) publishEvent(event string, t *model.Ticket) {
	if h.producer == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.producer.ProduceTicketEvent(ctx, event, t)
	}()
}
