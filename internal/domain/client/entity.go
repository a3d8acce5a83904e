package client

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyClientName   = errors.New("client name cannot be empty")
	ErrClientNameTooLong = errors.New("client name is too long (max 80 characters)")
)

const MaxClientNameLength = 80

type Client struct {
	id    int64
	name  string
	email Email
}

func NewClient(id int64, name, email string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyClientName
	}
	if utf8.RuneCountInString(name) > MaxClientNameLength {
		return nil, ErrClientNameTooLong
	}

	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	return &Client{
		id:    id,
		name:  name,
		email: e,
	}, nil
}

func (c *Client) ID() int64    { return c.id }
func (c *Client) Name() string { return c.name }
func (c *Client) Email() Email { return c.email }
