package rental

import "github.com/BruksfildServices01/rental-booking/internal/httperr"

const (
	CodeUserNotFound        = "usuario_nao_encontrado"
	CodePropertyNotFound    = "propriedade_nao_encontrada"
	CodeReservationNotFound = "reserva_nao_encontrada"
	CodeInvalidCredentials  = "credenciais_invalidas"
)

var (
	ErrUserNotFound        = httperr.ErrBusiness(CodeUserNotFound, "Usuário não encontrado")
	ErrPropertyNotFound    = httperr.ErrBusiness(CodePropertyNotFound, "Propriedade não encontrada")
	ErrReservationNotFound = httperr.ErrBusiness(CodeReservationNotFound, "Reserva não encontrada")
	ErrInvalidCredentials  = httperr.ErrBusiness(CodeInvalidCredentials, "Email ou senha inválidos")
)
