package user

import "errors"

var ErrUsernameTaken = errors.New("username already taken")

type User struct {
	ID       int
	Username string
	Password string
}
