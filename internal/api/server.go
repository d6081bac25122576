package api

import (
	"log"

	"ussurochki/internal/app/config"
	"ussurochki/internal/app/export"
	"ussurochki/internal/app/handler"
	"ussurochki/internal/app/logger"
	"ussurochki/internal/app/repository"
	"ussurochki/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ошибка чтения конфигурации: %v", err)
	}
	logger.Setup(cfg.Log)

	repo, err := repository.New(cfg.DBPath())
	if err != nil {
		logrus.Fatalf("ошибка инициализации репозитория: %v", err)
	}

	exporter := export.New(repo, cfg.ExportDir)
	h := handler.NewHandler(repo, exporter)

	r := gin.Default()

	app := pkg.NewApp(cfg, r, h)
	app.RunApp()

	log.Println("Server down")
}
