package auth

import "github.com/golang-jwt/jwt/v4"

// Claims - структура для хранения данных токена.
// В полезной нагрузке храним только id пользователя и стандартные поля
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}
