package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const hashCost = 10

type Port interface {
	Hash(pswd string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
}

type Core struct{}

func New() *Core {
	return &Core{}
}

func (a *Core) Hash(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), hashCost)
	return string(bytes), err
}

func (a *Core) ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
