package auth

import "errors"

// Ошибки, которые возвращает подсистема авторизации.
// Неизвестный логин и неверный пароль намеренно сведены в одну
// ошибку ErrBadCredentials, чтобы не раскрывать, что именно не совпало
var (
	ErrBadCredentials = errors.New("check the data you entered")
	ErrExpiredToken   = errors.New("token is expired")
	ErrInvalidToken   = errors.New("invalid token")
	ErrUserNotFound   = errors.New("no such user")
	ErrPasswordPolicy = errors.New("password must be at least 8 characters long and contain at least one number")
)
