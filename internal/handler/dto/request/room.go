package request

import (
	"hotel-backend/internal/usecase/commands"
)

type RoomRequest struct {
	Number int     `json:"number" binding:"required,gt=0,max=2147483647"`
	Type   string  `json:"type" binding:"required,max=80"`
	Price  float64 `json:"price" binding:"required,gt=0,lte=99999999.99"`
}

func (r RoomRequest) ToInput() commands.RoomInput {
	return commands.RoomInput{
		Number: r.Number,
		Type:   r.Type,
		Price:  r.Price,
	}
}
