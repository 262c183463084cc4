package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/rental"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/httpresp"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type UserHandler struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewUserHandler(repo domain.Repository, audit *audit.Logger) *UserHandler {
	return &UserHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

// Ponteiros: "required" exige a presença da chave, não um valor não-vazio.
type CreateUserRequest struct {
	Name     *string `json:"NOME" binding:"required"`
	CPF      *string `json:"CPF" binding:"required"`
	Phone    *string `json:"TELEFONE"`
	Email    *string `json:"EMAIL"`
	Password *string `json:"SENHA" binding:"required"`
	Level    *string `json:"NIVEL"`
	Photo    *string `json:"FOTO"`
}

// Apenas o nível de acesso pode ser alterado.
type UpdateUserRequest struct {
	Level *string `json:"NIVEL"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.ListUsers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_users", err)
		return
	}

	httpresp.List(c, models.UsersToDTO(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, domain.ErrUserNotFound)
	if !ok {
		return
	}

	user, err := h.repo.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, "failed_to_get_user", err)
		return
	}

	httpresp.OK(c, user.ToDTO())
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "invalid_request", err)
		return
	}

	user := models.User{
		Name:     *req.Name,
		CPF:      *req.CPF,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: *req.Password,
	}
	if req.Level != nil {
		user.Level = *req.Level
	}
	if req.Photo != nil {
		user.Photo = *req.Photo
	}

	if err := h.repo.CreateUser(c.Request.Context(), &user); err != nil {
		httperr.Internal(c, "failed_to_create_user", err)
		return
	}

	h.audit.Log(c.Request.Context(), audit.Event{
		Action:   audit.ActionCreated,
		Entity:   "usuario",
		EntityID: user.ID,
	})

	httpresp.Created(c, "Usuário adicionado!", "usuario", user.ToDTO())
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, domain.ErrUserNotFound)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "invalid_request", err)
		return
	}

	user, err := h.repo.UpdateUser(c.Request.Context(), id, func(u *models.User) {
		if req.Level != nil {
			u.Level = *req.Level
		}
	})
	if err != nil {
		respondError(c, "failed_to_update_user", err)
		return
	}

	h.audit.Log(c.Request.Context(), audit.Event{
		Action:   audit.ActionUpdated,
		Entity:   "usuario",
		EntityID: user.ID,
		Metadata: map[string]any{"nivel": user.Level},
	})

	httpresp.Updated(c, "Usuário atualizado com sucesso", "usuario", user.ToDTO())
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, domain.ErrUserNotFound)
	if !ok {
		return
	}

	if err := h.repo.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, "failed_to_delete_user", err)
		return
	}

	h.audit.Log(c.Request.Context(), audit.Event{
		Action:   audit.ActionDeleted,
		Entity:   "usuario",
		EntityID: id,
	})

	httpresp.Message(c, "Usuário excluído com sucesso")
}
