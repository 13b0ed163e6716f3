package api

import (
	"log"
	"net/http"

	"github.com/Mary-cross1296/salary_service/auth"
	"github.com/Mary-cross1296/salary_service/storage"
	"github.com/gorilla/mux"
)

// Функция для создания и запуска HTTP сервера
func HttpServer(port string, db *storage.DataBase, gate *auth.Gate) *http.Server {
	// Создание роутера
	router := NewRouter(db, gate)

	// Создание объекта сервера
	httpServer := http.Server{
		Addr:    ":" + port, // Установка адреса сервера
		Handler: router,     // Установка роутера в качестве обработчика
	}

	// Запуск сервера на указанном порту
	log.Printf("Сервер запущен на порту %v\n", port)
	go func() {
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Http server error \n", err)
		}
	}()
	return &httpServer
}

// Функция для создания роутера с обработчиками запросов
func NewRouter(db *storage.DataBase, gate *auth.Gate) *mux.Router {
	router := mux.NewRouter()

	// Создание обработчиков
	handlers := &Handlers{DB: db, Gate: gate}

	// Обработчики запросов
	router.HandleFunc("/users/", handlers.CreateUserHandler).Methods(http.MethodPost)
	router.HandleFunc("/users/", handlers.GetUsersHandler).Methods(http.MethodGet)
	router.HandleFunc("/get_token/", handlers.GetTokenHandler).Methods(http.MethodGet)
	router.HandleFunc("/get_salary/", handlers.GetSalaryHandler).Methods(http.MethodGet)
	router.HandleFunc("/update_salary/", handlers.UpdateSalaryHandler).Methods(http.MethodPatch)
	router.HandleFunc("/user/", handlers.GetUserHandler).Methods(http.MethodGet)

	return router
}
