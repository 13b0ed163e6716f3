package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Срок действия токена, выдаваемого при авторизации
const TokenTTL = 15 * time.Minute

// Config - конфигурация процесса. Заполняется один раз при старте
// и дальше передается по ссылке, поля не меняются
type Config struct {
	Port      string
	DBFile    string
	SecretKey string
	Algorithm string
}

// Загрузка переменных окружения
func LoadEnvVar(envPath string) {
	err := godotenv.Load(envPath)
	if err != nil {
		log.Printf("Error loading .env file from path %s: %v", envPath, err)
	} else {
		log.Printf(".env file loaded successfully from path %s", envPath)
	}
}

// Функция сборки конфигурации из переменных окружения.
// Отсутствие ключа подписи или алгоритма - ошибка запуска процесса,
// а не ошибка обработки запроса
func New() (*Config, error) {
	cfg := &Config{
		Port:      os.Getenv("SALARY_PORT"),
		DBFile:    os.Getenv("SALARY_DBFILE"),
		SecretKey: os.Getenv("SECRET_KEY"),
		Algorithm: os.Getenv("ALGORITHM"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBFile == "" {
		cfg.DBFile = "salary.db"
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("SECRET_KEY environment variable is not set")
	}
	if cfg.Algorithm == "" {
		return nil, errors.New("ALGORITHM environment variable is not set")
	}
	return cfg, nil
}
