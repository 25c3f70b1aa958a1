package main

import (
	"log"

	"wpcopyright/internal/api"
)

// @title WP Copyright API
// @version 1.0
// @description Лицензии записей: выбор по умолчанию, массовое применение и уведомления об авторских правах
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Введите "Bearer" и JWT токен через пробел
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
