package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService выпускает и проверяет подписанные JWT токены.
// Секретный ключ и алгоритм задаются один раз при старте процесса
// и дальше не меняются, поэтому структуру можно читать из разных
// горутин без блокировок
type TokenService struct {
	secretKey []byte
	method    jwt.SigningMethod
}

// Функция создания сервиса токенов.
// Пустой ключ или неизвестный алгоритм - фатальная ошибка конфигурации
func NewTokenService(secretKey string, algorithm string) (*TokenService, error) {
	if secretKey == "" {
		return nil, errors.New("signing secret key is not set")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}

	return &TokenService{
		secretKey: []byte(secretKey),
		method:    method,
	}, nil
}

// Функция выпуска токена с id пользователя и сроком действия ttl
func (s *TokenService) Issue(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// Функция проверки токена. Возвращает id пользователя из полезной нагрузки.
// Просроченный токен дает ErrExpiredToken, все остальные проблемы
// (битая подпись, чужой алгоритм, нет id) - ErrInvalidToken
func (s *TokenService) Validate(tokenString string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Проверяем, что токен подписан тем же алгоритмом, которым подписываем мы
		if t.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		// Подпись проверяем раньше срока действия: токен с битой
		// подписью недействителен, даже если он к тому же просрочен
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return 0, ErrInvalidToken
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	if !token.Valid {
		return 0, ErrInvalidToken
	}

	if claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
