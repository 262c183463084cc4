package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/rental"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/httpresp"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type PropertyHandler struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewPropertyHandler(repo domain.Repository, audit *audit.Logger) *PropertyHandler {
	return &PropertyHandler{repo: repo, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePropertyRequest struct {
	Location *string          `json:"LOCAL" binding:"required"`
	Price    *decimal.Decimal `json:"PRECO" binding:"required"`
	Rooms    *int             `json:"QUARTOS" binding:"required"`
	Size     *decimal.Decimal `json:"TAMANHO" binding:"required"`
	Image    *string          `json:"IMAGEM" binding:"required"`
	UserID   *uint            `json:"USUARIO_ID" binding:"required"`
}

// Só estes campos são atualizáveis; qualquer outra chave é ignorada.
type UpdatePropertyRequest struct {
	Location *string          `json:"LOCAL"`
	Price    *decimal.Decimal `json:"PRECO"`
	Rooms    *int             `json:"QUARTOS"`
	Size     *decimal.Decimal `json:"TAMANHO"`
	Image    *string          `json:"IMAGEM"`
}

func (req UpdatePropertyRequest) apply(p *models.Property) {
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Rooms != nil {
		p.Rooms = *req.Rooms
	}
	if req.Size != nil {
		p.Size = *req.Size
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
}

// ======================================================
// HANDLERS
// ======================================================

func (h *PropertyHandler) List(c *gin.Context) {
	props, err := h.repo.ListProperties(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_properties", err)
		return
	}

	httpresp.List(c, models.PropertiesToDTO(props))
}

func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := parseID(c, domain.ErrPropertyNotFound)
	if !ok {
		return
	}

	prop, err := h.repo.GetProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, "failed_to_get_property", err)
		return
	}

	httpresp.OK(c, prop.ToDTO())
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "invalid_request", err)
		return
	}

	prop := models.Property{
		Location: *req.Location,
		Price:    *req.Price,
		Rooms:    *req.Rooms,
		Size:     *req.Size,
		Image:    *req.Image,
		UserID:   *req.UserID,
	}

	if err := h.repo.CreateProperty(c.Request.Context(), &prop); err != nil {
		httperr.Internal(c, "failed_to_create_property", err)
		return
	}

	h.audit.Log(c.Request.Context(), audit.Event{
		Action:   audit.ActionCreated,
		Entity:   "propriedade",
		EntityID: prop.ID,
		Metadata: map[string]any{"usuario_id": prop.UserID},
	})

	httpresp.Created(c, "Propriedade adicionada!", "propriedade", prop.ToDTO())
}

func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseID(c, domain.ErrPropertyNotFound)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "invalid_request", err)
		return
	}

	prop, err := h.repo.UpdateProperty(c.Request.Context(), id, req.apply)
	if err != nil {
		respondError(c, "failed_to_update_property", err)
		return
	}

	h.audit.Log(c.Request.Context(), audit.Event{
		Action:   audit.ActionUpdated,
		Entity:   "propriedade",
		EntityID: prop.ID,
	})

	httpresp.Updated(c, "Propriedade atualizada!", "propriedade", prop.ToDTO())
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, domain.ErrPropertyNotFound)
	if !ok {
		return
	}

	if err := h.repo.DeleteProperty(c.Request.Context(), id); err != nil {
		respondError(c, "failed_to_delete_property", err)
		return
	}

	h.audit.Log(c.Request.Context(), audit.Event{
		Action:   audit.ActionDeleted,
		Entity:   "propriedade",
		EntityID: id,
	})

	httpresp.Message(c, "Propriedade excluída com sucesso")
}
