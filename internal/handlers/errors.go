package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/rental-booking/internal/domain/rental"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
)

// respondError: credenciais → 401, demais erros de domínio → 404,
// qualquer outro erro → 500 com a mensagem original.
func respondError(c *gin.Context, code string, err error) {
	if httperr.IsBusiness(err, domain.CodeInvalidCredentials) {
		httperr.Business(c, http.StatusUnauthorized, err)
		return
	}
	if httperr.Business(c, http.StatusNotFound, err) {
		return
	}
	httperr.Internal(c, code, err)
}

// parseID lê o :id da rota. Um id inválido não corresponde a nenhum
// registro, então responde com o 404 da entidade.
func parseID(c *gin.Context, notFound error) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Business(c, http.StatusNotFound, notFound)
		return 0, false
	}
	return uint(id), true
}
