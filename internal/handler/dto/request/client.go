package request

import (
	"hotel-backend/internal/usecase/commands"
)

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required,max=80"`
	Email string `json:"email" binding:"required,email,max=80"`
}

func (r CreateClientRequest) ToInput() commands.ClientInput {
	return commands.ClientInput{
		Name:  r.Name,
		Email: r.Email,
	}
}
