package dsn

import (
	"fmt"
	"os"
)

// FromEnv собирает строку подключения к postgres из переменных окружения
func FromEnv() string {
	host, existHost := os.LookupEnv("DB_HOST")
	if !existHost {
		return ""
	}
	port, existPort := os.LookupEnv("DB_PORT")
	if !existPort {
		return ""
	}
	user, existUser := os.LookupEnv("DB_USER")
	if !existUser {
		return ""
	}
	pass, existPass := os.LookupEnv("DB_PASS")
	if !existPass {
		return ""
	}
	dbname, existName := os.LookupEnv("DB_NAME")
	if !existName {
		return ""
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
}
