package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Минимальная длина пароля
const MinPasswordLen = 8

// Функция проверки политики паролей: длина не менее 8 символов
// и пароль не должен состоять только из цифр.
// Проверка выполняется до хеширования и записи в базу
func ValidatePasswordPolicy(password string) error {
	if len(password) < MinPasswordLen || isDigitsOnly(password) {
		return ErrPasswordPolicy
	}
	return nil
}

func isDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Функция хеширования пароля через bcrypt.
// Соль генерируется внутри bcrypt, поэтому одинаковые пароли
// дают разные дайджесты, но CheckPassword их сверяет корректно
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// Функция сравнения пароля с хэшем из базы
func CheckPassword(password string, hashedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
