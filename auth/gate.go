package auth

import (
	"errors"
	"time"

	"github.com/Mary-cross1296/salary_service/storage"
)

// UserStore - абстракция над хранилищем пользователей.
// Авторизации нужны только выборки по логину и по id
type UserStore interface {
	GetUserByLogin(login string) (storage.User, error)
	GetUserByID(id int64) (storage.User, error)
}

// Gate - единая точка входа для выдачи токенов и доступа к данным
// о зарплате. Login и Resolve ничего не пишут в хранилище
type Gate struct {
	store    UserStore
	tokens   *TokenService
	tokenTTL time.Duration
}

func NewGate(store UserStore, tokens *TokenService, tokenTTL time.Duration) *Gate {
	return &Gate{
		store:    store,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// Функция авторизации по логину и паролю.
// Несуществующий логин и неверный пароль возвращают одну и ту же
// ошибку ErrBadCredentials, ответы не должны различаться
func (g *Gate) Login(login string, password string) (string, error) {
	user, err := g.store.GetUserByLogin(login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", ErrBadCredentials
		}
		return "", err
	}

	if !CheckPassword(password, user.Password) {
		return "", ErrBadCredentials
	}

	return g.tokens.Issue(user.ID, g.tokenTTL)
}

// Функция разрешения токена в запись пользователя.
// Через нее проходит каждый запрос на чтение или изменение зарплаты
func (g *Gate) Resolve(tokenString string) (storage.User, error) {
	id, err := g.tokens.Validate(tokenString)
	if err != nil {
		return storage.User{}, err
	}

	user, err := g.store.GetUserByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return storage.User{}, ErrUserNotFound
		}
		return storage.User{}, err
	}
	return user, nil
}
