package room

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidRoomNumber = errors.New("room number must be between 1 and 2147483647")
	ErrEmptyRoomType     = errors.New("room type cannot be empty")
	ErrRoomTypeTooLong   = errors.New("room type is too long (max 80 characters)")
	ErrInvalidPrice      = errors.New("room price must be between 0.01 and 99999999.99")
)

const (
	MaxRoomTypeLength = 80
	MaxRoomNumber     = math.MaxInt32
	// numeric(10,2) bounds
	MinPrice = 0.01
	MaxPrice = 99999999.99
)

type Room struct {
	id       int64
	number   int
	roomType string
	price    float64
}

// NewRoom validates the attributes of a room. id is zero for rooms that
// have not been persisted yet.
func NewRoom(id int64, number int, roomType string, price float64) (*Room, error) {
	if err := validateNumber(number); err != nil {
		return nil, err
	}

	if err := validateRoomType(roomType); err != nil {
		return nil, err
	}

	price, err := normalizePrice(price)
	if err != nil {
		return nil, err
	}

	return &Room{
		id:       id,
		number:   number,
		roomType: strings.TrimSpace(roomType),
		price:    price,
	}, nil
}

func validateNumber(number int) error {
	if number <= 0 || number > MaxRoomNumber {
		return ErrInvalidRoomNumber
	}
	return nil
}

func validateRoomType(roomType string) error {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return ErrEmptyRoomType
	}
	if utf8.RuneCountInString(roomType) > MaxRoomTypeLength {
		return ErrRoomTypeTooLong
	}
	return nil
}

// normalizePrice rounds to cents; the rounded value is what gets stored.
func normalizePrice(price float64) (float64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrInvalidPrice
	}
	rounded := math.Round(price*100) / 100
	if rounded < MinPrice || rounded > MaxPrice {
		return 0, ErrInvalidPrice
	}
	return rounded, nil
}

func (r *Room) ID() int64      { return r.id }
func (r *Room) Number() int    { return r.number }
func (r *Room) Type() string   { return r.roomType }
func (r *Room) Price() float64 { return r.price }
