package utils

import "os"

// Функция для проверки существования файла
func FileExists(filepath string) bool {
	_, err := os.Stat(filepath)
	return !os.IsNotExist(err)
}
