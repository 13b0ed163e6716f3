package storage

import (
	"log"

	"github.com/Mary-cross1296/salary_service/utils"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type DataBase struct {
	*sqlx.DB
}

func OpenDataBase(dbFile string) (*DataBase, error) {
	db, err := sqlx.Connect("sqlite3", dbFile)
	if err != nil {
		log.Printf("Error opening database: %s\n", err)
		return nil, err
	}
	return &DataBase{db}, nil
}

func (db *DataBase) CreateTableWithIndex() error {
	createTableRequest := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		login VARCHAR(50) NOT NULL,
		password VARCHAR(128) NOT NULL,
		salary NUMERIC(10, 2) NOT NULL,
		upgrade_date VARCHAR(128) NOT NULL
	);
	`
	createIndexRequest := "CREATE UNIQUE INDEX IF NOT EXISTS index_login ON users(login);"

	_, err := db.Exec(createTableRequest)
	if err != nil {
		log.Printf("Error creating table: %s\n", err)
		return err
	}

	_, err = db.Exec(createIndexRequest)
	if err != nil {
		log.Printf("Error creating index: %s\n", err)
		return err
	}
	return nil
}

// Функция подготовки базы данных: открывает файл БД и при первом
// запуске создает таблицу пользователей с уникальным индексом по логину
func PrepareDataBase(dbFile string) (*DataBase, error) {
	if !utils.FileExists(dbFile) {
		log.Printf("Database file %s is missing, a new database file will be created...\n", dbFile)
	}

	db, err := OpenDataBase(dbFile)
	if err != nil {
		return nil, err
	}

	if err := db.CreateTableWithIndex(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
