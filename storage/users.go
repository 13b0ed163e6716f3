package storage

import (
	"database/sql"
	"errors"
	"log"
)

var ErrUserNotFound = errors.New("user not found")

// User - запись о пользователе в таблице users.
// Пароль хранится только в виде bcrypt-хэша
type User struct {
	ID          int64   `db:"id" json:"id"`
	Login       string  `db:"login" json:"login"`
	Password    string  `db:"password" json:"password"`
	Salary      float64 `db:"salary" json:"salary"`
	UpgradeDate string  `db:"upgrade_date" json:"upgrade_date"`
}

// Функция добавления пользователя. Уникальность логина обеспечивает
// индекс index_login, нарушение возвращается как ошибка драйвера
func (db *DataBase) InsertUser(user User) (int64, error) {
	query := "INSERT INTO users (login, password, salary, upgrade_date) VALUES (?, ?, ?, ?)"

	res, err := db.Exec(query, user.Login, user.Password, user.Salary, user.UpgradeDate)
	if err != nil {
		log.Printf("InsertUser(): Error executing request: %s\n", err)
		return 0, err
	}

	// Получаем ID добавленного пользователя
	id, err := res.LastInsertId()
	if err != nil {
		log.Printf("InsertUser(): Error getting user ID")
		return 0, err
	}
	return id, nil
}

func (db *DataBase) GetUserByLogin(login string) (User, error) {
	var user User
	err := db.Get(&user, "SELECT id, login, password, salary, upgrade_date FROM users WHERE login = ?", login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		log.Printf("GetUserByLogin(): Error retrieving user data: %s\n", err)
		return user, err
	}
	return user, nil
}

func (db *DataBase) GetUserByID(id int64) (User, error) {
	var user User
	err := db.Get(&user, "SELECT id, login, password, salary, upgrade_date FROM users WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		log.Printf("GetUserByID(): Error retrieving user data: %s\n", err)
		return user, err
	}
	return user, nil
}

// Функция обновления зарплаты и даты повышения по id пользователя
func (db *DataBase) UpdateUserSalary(id int64, salary float64, upgradeDate string) error {
	query := "UPDATE users SET salary = ?, upgrade_date = ? WHERE id = ?"
	result, err := db.Exec(query, salary, upgradeDate, id)
	if err != nil {
		log.Printf("UpdateUserSalary(): Error executing request: %s\n", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("UpdateUserSalary(): Unable to determine number of affected rows after update")
		return err
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (db *DataBase) GetAllUsers() ([]User, error) {
	var users []User
	err := db.Select(&users, "SELECT id, login, password, salary, upgrade_date FROM users ORDER BY id")
	if err != nil {
		log.Printf("GetAllUsers(): Error executing database query: %s\n", err)
		return nil, err
	}

	// Если список пользователей пустой, возвращаем пустой массив
	if len(users) == 0 {
		users = []User{}
	}
	return users, nil
}
