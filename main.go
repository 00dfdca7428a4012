// @title APCS Practice 後端 API
// @version 1.0
// @description APCS 檢定練習平台的後端服務：模擬考組卷、批改與 AI 出題。

// @host localhost:3011
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"apcs_practice_backend/internal/app"
	"apcs_practice_backend/internal/config"
	"apcs_practice_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "只執行資料庫遷移，完成後退出")
	migrate := flag.Bool("migrate", false, "啟動時強制執行資料庫遷移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("資料庫遷移完成，退出程式")
		return
	}

	application.Run()
}
