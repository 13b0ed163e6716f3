package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Mary-cross1296/salary_service/auth"
	"github.com/Mary-cross1296/salary_service/dates"
	"github.com/Mary-cross1296/salary_service/storage"
)

// Структура для обработки запросов
type Handlers struct {
	DB   *storage.DataBase
	Gate *auth.Gate
}

// Структура запроса на создание пользователя
type CreateUserRequest struct {
	Login       string  `json:"login"`
	Password    string  `json:"password"`
	Salary      float64 `json:"salary"`
	UpgradeDate string  `json:"upgrade_date"`
}

// Структура ответа с данными о зарплате
type SalaryResponse struct {
	Salary      float64 `json:"salary"`
	UpgradeDate string  `json:"upgrade_date"`
}

// Структура ответа на создание пользователя
type CreatedUserResponse struct {
	Login       string  `json:"login"`
	Salary      float64 `json:"salary"`
	UpgradeDate string  `json:"upgrade_date"`
}

// Обработчик POST-запросов на создание пользователя.
// Политика паролей и зарплата проверяются до хеширования и записи в базу
func (h *Handlers) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErrorResponse(w, "CreateUserHandler(): JSON deserialization error", http.StatusBadRequest)
		return
	}

	// Проверяем обязательное поле login
	if req.Login == "" {
		SendErrorResponse(w, "CreateUserHandler(): Login not specified", http.StatusBadRequest)
		return
	}

	// Проверяем политику паролей
	if err := auth.ValidatePasswordPolicy(req.Password); err != nil {
		SendErrorResponse(w, "Password must be at least 8 characters long and contain at least one number", http.StatusBadRequest)
		return
	}

	if req.Salary <= 0 {
		SendErrorResponse(w, "Salary must be greater than zero", http.StatusBadRequest)
		return
	}

	// Проверяем формат даты повышения
	upgradeDate, err := dates.ParseUpgradeDate(req.UpgradeDate)
	if err != nil {
		SendErrorResponse(w, "CreateUserHandler(): Upgrade date is not in the correct format", http.StatusBadRequest)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		SendErrorResponse(w, "CreateUserHandler(): Error hashing password", http.StatusInternalServerError)
		return
	}

	user := storage.User{
		Login:       req.Login,
		Password:    hashedPassword,
		Salary:      req.Salary,
		UpgradeDate: dates.FormatUpgradeDate(upgradeDate),
	}

	// Нарушение уникальности логина приходит ошибкой из базы
	_, err = h.DB.InsertUser(user)
	if err != nil {
		SendErrorResponse(w, fmt.Sprintf("Database error: %v", err), http.StatusBadRequest)
		return
	}

	response := CreatedUserResponse{
		Login:       user.Login,
		Salary:      user.Salary,
		UpgradeDate: user.UpgradeDate,
	}
	SendJSONResponse(w, response, http.StatusOK)
}

// Обработчик GET-запросов на получение токена по логину и паролю.
// Для неизвестного логина и неверного пароля ответ одинаковый
func (h *Handlers) GetTokenHandler(w http.ResponseWriter, r *http.Request) {
	login := r.FormValue("login")
	password := r.FormValue("password")

	tokenString, err := h.Gate.Login(login, password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			SendErrorResponse(w, "Check the data you entered", http.StatusNotFound)
			return
		}
		SendErrorResponse(w, "GetTokenHandler(): Error issuing token", http.StatusInternalServerError)
		return
	}

	// Отдаем токен строкой, как ожидают существующие клиенты
	SendJSONResponse(w, tokenString, http.StatusOK)
}

// Обработчик GET-запросов на получение зарплаты по токену
func (h *Handlers) GetSalaryHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.FormValue("token")

	user, err := h.Gate.Resolve(tokenString)
	if err != nil {
		h.sendResolveError(w, err)
		return
	}

	response := SalaryResponse{
		Salary:      user.Salary,
		UpgradeDate: user.UpgradeDate,
	}
	SendJSONResponse(w, response, http.StatusOK)
}

// Обработчик PATCH-запросов на обновление зарплаты.
// Обновить можно только запись владельца токена
func (h *Handlers) UpdateSalaryHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		SendErrorResponse(w, "UpdateSalaryHandler(): Error parsing form data", http.StatusBadRequest)
		return
	}

	user, err := h.Gate.Resolve(r.FormValue("token"))
	if err != nil {
		h.sendResolveError(w, err)
		return
	}

	salary, err := strconv.ParseFloat(r.FormValue("salary"), 64)
	if err != nil || salary <= 0 {
		SendErrorResponse(w, "Salary must be greater than zero", http.StatusBadRequest)
		return
	}

	upgradeDate, err := dates.ParseUpgradeDate(r.FormValue("upgrade_date"))
	if err != nil {
		SendErrorResponse(w, "UpdateSalaryHandler(): Upgrade date is not in the correct format", http.StatusBadRequest)
		return
	}

	err = h.DB.UpdateUserSalary(user.ID, salary, dates.FormatUpgradeDate(upgradeDate))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			SendErrorResponse(w, "No such user", http.StatusNotFound)
			return
		}
		SendErrorResponse(w, fmt.Sprintf("Database error: %v", err), http.StatusBadRequest)
		return
	}

	updated, err := h.DB.GetUserByID(user.ID)
	if err != nil {
		SendErrorResponse(w, "UpdateSalaryHandler(): Error retrieving user data", http.StatusInternalServerError)
		return
	}
	SendJSONResponse(w, updated, http.StatusOK)
}

// Обработчик GET-запросов на получение списка пользователей
func (h *Handlers) GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.DB.GetAllUsers()
	if err != nil {
		SendErrorResponse(w, "GetUsersHandler(): Error executing database query", http.StatusInternalServerError)
		return
	}
	SendJSONResponse(w, users, http.StatusOK)
}

// Обработчик GET-запросов на получение пользователя по id
func (h *Handlers) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	idParam := r.FormValue("id")
	if idParam == "" {
		SendErrorResponse(w, "GetUserHandler(): ID not specified", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		SendErrorResponse(w, "GetUserHandler(): Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.DB.GetUserByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			SendErrorResponse(w, "No such user", http.StatusNotFound)
			return
		}
		SendErrorResponse(w, "GetUserHandler(): Error retrieving user data", http.StatusInternalServerError)
		return
	}
	SendJSONResponse(w, user, http.StatusOK)
}

// Функция для отправки ошибок проверки токена.
// Просроченный и некорректный токены различаются в ответе,
// отсутствующий пользователь дает 404
func (h *Handlers) sendResolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		SendErrorResponse(w, "Token is expired", http.StatusBadRequest)
	case errors.Is(err, auth.ErrInvalidToken):
		SendErrorResponse(w, "Invalid token", http.StatusBadRequest)
	case errors.Is(err, auth.ErrUserNotFound):
		SendErrorResponse(w, "No such user", http.StatusNotFound)
	default:
		SendErrorResponse(w, "Error resolving token", http.StatusInternalServerError)
	}
}
