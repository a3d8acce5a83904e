package response

import (
	"time"

	"hotel-backend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromClientView(v *queries.ClientView) (*ClientResponse, error) {
	res := &ClientResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromClientViews(views []*queries.ClientView) ([]ClientResponse, error) {
	res := make([]ClientResponse, 0, len(views))
	for _, v := range views {
		r, err := FromClientView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, *r)
	}
	return res, nil
}
