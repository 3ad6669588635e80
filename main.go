package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"vows.link/configs"
	"vows.link/configs/configslog"
	"vows.link/routes"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadConfig()
	configs.InitDB()
	defer configs.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName: "vows.link",
		Views:   engine,
	})

	app.Static("/static", "./static")
	routes.SetupRoutes(app)

	addr := ":" + configs.App.Port
	configslog.SLog.Infof("Listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("server stopped", zap.Error(err))
	}
}
