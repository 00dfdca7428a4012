package database

import (
	"apcs_practice_backend/internal/config"
	"apcs_practice_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate 建立題庫資料表。題目內容由營運端匯入，不做種子資料
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.ConceptQuestion{},
		&model.ImplementationQuestion{},
	); err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}
