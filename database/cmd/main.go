package main

import (
	"flag"

	"vows.link/configs"
	"vows.link/configs/configslog"
	"vows.link/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Run the database migrations")
	seedFlag := flag.Bool("seed", false, "Run the database seeders")
	flag.Parse()

	configs.LoadConfig()
	configs.InitDB()
	defer configs.CloseDB()

	configslog.SLog.Info("Running database initialization...")
	database.Initialize(configs.GetDB(), *migrateFlag, *seedFlag)
	configslog.SLog.Info("Database initialization finished.")
}
