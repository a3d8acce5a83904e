//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backend/internal/domain/client"
	reqdto "hotel-backend/internal/handler/dto/request"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ClientBuilder struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:        1,
		Name:      "Martin",
		Email:     "martin@example.com",
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) BuildDomain() (*client.Client, error) {
	return client.NewClient(b.ID, b.Name, b.Email)
}

func (b *ClientBuilder) BuildInfra() sqlc.Clients {
	return sqlc.Clients{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ClientBuilder) BuildRequestDTO() reqdto.CreateClientRequest {
	return reqdto.CreateClientRequest{
		Name:  b.Name,
		Email: b.Email,
	}
}

func (b *ClientBuilder) BuildInput() commands.ClientInput {
	return b.BuildRequestDTO().ToInput()
}

func (b *ClientBuilder) BuildView() *queries.ClientView {
	return &queries.ClientView{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
	}
}

func (b *ClientBuilder) BuildSnapshot() *shared.ClientSnapshot {
	return &shared.ClientSnapshot{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
	}
}
