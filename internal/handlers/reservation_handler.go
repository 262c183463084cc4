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

type ReservationHandler struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewReservationHandler(repo domain.Repository, audit *audit.Logger) *ReservationHandler {
	return &ReservationHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

// Datas em "YYYY-MM-DD". FIM_RESERVA vazio ou ausente fica nulo.
type CreateReservationRequest struct {
	UserID     *uint            `json:"USUARIO_ID" binding:"required"`
	PropertyID *uint            `json:"PROPRIEDADE_ID" binding:"required"`
	Price      *decimal.Decimal `json:"PRECO" binding:"required"`
	StartDate  *string          `json:"DATA_RESERVA" binding:"required"`
	EndDate    *string          `json:"FIM_RESERVA"`
}

func (req CreateReservationRequest) toModel() (models.Reservation, error) {
	start, err := models.ParseDate(*req.StartDate)
	if err != nil {
		return models.Reservation{}, err
	}

	res := models.Reservation{
		UserID:     *req.UserID,
		PropertyID: *req.PropertyID,
		Price:      *req.Price,
		StartDate:  start,
	}

	if req.EndDate != nil && *req.EndDate != "" {
		end, err := models.ParseDate(*req.EndDate)
		if err != nil {
			return models.Reservation{}, err
		}
		res.EndDate = &end
	}

	return res, nil
}

// --------- Handlers ---------

func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.repo.ListReservations(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", err)
		return
	}

	httpresp.List(c, models.ReservationsToDTO(reservations))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, domain.ErrReservationNotFound)
	if !ok {
		return
	}

	res, err := h.repo.GetReservation(c.Request.Context(), id)
	if err != nil {
		respondError(c, "failed_to_get_reservation", err)
		return
	}

	httpresp.OK(c, res.ToDTO())
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "invalid_request", err)
		return
	}

	res, err := req.toModel()
	if err != nil {
		httperr.Internal(c, "invalid_date", err)
		return
	}

	if err := h.repo.CreateReservation(c.Request.Context(), &res); err != nil {
		httperr.Internal(c, "failed_to_create_reservation", err)
		return
	}

	h.audit.Log(c.Request.Context(), audit.Event{
		Action:   audit.ActionCreated,
		Entity:   "reserva",
		EntityID: res.ID,
		Metadata: map[string]any{
			"usuario_id":     res.UserID,
			"propriedade_id": res.PropertyID,
		},
	})

	httpresp.Created(c, "Reserva criada!", "reserva", res.ToDTO())
}
