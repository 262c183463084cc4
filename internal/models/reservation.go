package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/rental-booking/internal/dto"
)

const DateLayout = "2006-01-02"

// Reserva de um imóvel por um usuário. FIM_RESERVA é opcional.
type Reservation struct {
	ID uint `gorm:"column:ID;primaryKey"`

	UserID uint  `gorm:"column:USUARIO_ID;not null;index"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	PropertyID uint      `gorm:"column:PROPRIEDADE_ID;not null;index"`
	Property   *Property `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	Price     decimal.Decimal `gorm:"column:PRECO;type:decimal(12,2);not null"`
	StartDate datatypes.Date  `gorm:"column:DATA_RESERVA;not null"`
	EndDate   *datatypes.Date `gorm:"column:FIM_RESERVA"`
}

func (Reservation) TableName() string { return TableReservations }

// ParseDate aceita "YYYY-MM-DD" e, como alternativa, RFC3339.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		var rfcErr error
		if t, rfcErr = time.Parse(time.RFC3339, s); rfcErr != nil {
			return datatypes.Date{}, err
		}
	}
	return datatypes.Date(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

func (r Reservation) ToDTO() dto.Reservation {
	out := dto.Reservation{
		ID:         r.ID,
		UserID:     r.UserID,
		PropertyID: r.PropertyID,
		Price:      r.Price.InexactFloat64(),
		StartDate:  FormatDate(r.StartDate),
	}

	if r.EndDate != nil {
		end := FormatDate(*r.EndDate)
		out.EndDate = &end
	}

	return out
}

func ReservationsToDTO(reservations []Reservation) []dto.Reservation {
	out := make([]dto.Reservation, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, r.ToDTO())
	}
	return out
}
