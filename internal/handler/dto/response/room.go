package response

import (
	"hotel-backend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID     int64   `json:"id"`
	Number int     `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	res := &RoomResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromRoomViews(views []*queries.RoomView) ([]RoomResponse, error) {
	res := make([]RoomResponse, 0, len(views))
	for _, v := range views {
		r, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, *r)
	}
	return res, nil
}
