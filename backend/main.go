package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mary-cross1296/salary_service/api"
	"github.com/Mary-cross1296/salary_service/auth"
	"github.com/Mary-cross1296/salary_service/config"
	"github.com/Mary-cross1296/salary_service/storage"
)

func main() {
	// Загрузка переменных окружения
	config.LoadEnvVar(".env")

	// Сборка конфигурации. Без ключа подписи и алгоритма сервис не стартует
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	tokenService, err := auth.NewTokenService(cfg.SecretKey, cfg.Algorithm)
	if err != nil {
		log.Fatalf("Token service error: %v", err)
	}

	// Подготовка базы данных
	db, err := storage.PrepareDataBase(cfg.DBFile)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	defer db.Close()

	gate := auth.NewGate(db, tokenService, config.TokenTTL)

	// Запуск сервера
	httpServer := api.HttpServer(cfg.Port, db, gate)

	// Канал для сигналов
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigs
	fmt.Println("signal:", sig)

	httpServer.Close()
}
