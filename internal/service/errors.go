package service

import "errors"

var (
	ErrInvalidReference   = errors.New("unknown role or profession")
	ErrUserAlreadyExist   = errors.New("user already exist")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrStorageFault       = errors.New("storage fault")
	ErrCryptoFault        = errors.New("crypto fault")
)
