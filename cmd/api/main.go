package main

import (
	"context"
	"os"

	_ "mecanica_oficina/docs"
	"mecanica_oficina/internal/adapter/http/routes"
	"mecanica_oficina/pkg/config"
	"mecanica_oficina/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mecanica Oficina API
// @version         1.0
// @description     Repair shop state sync: repair orders, master inventory and low-stock alerts, mirrored to DynamoDB or kept local in simulated mode.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{ServiceName: "mecanica-oficina"}).Error(context.Background(), "[app][main] invalid configuration", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: "mecanica-oficina",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})

	if err := routes.Run(cfg, log); err != nil {
		log.Error(context.Background(), "[app][main] failed to start the application", err)
		os.Exit(1)
	}
}
