package database

import (
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/model"
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
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedCatalog(db)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Section{},
		&model.Enrollment{},
		&model.SectionCompletion{},
	)
}

// seedCatalog inserts a couple of demo courses so a fresh instance has
// something to browse. Skipped as soon as any course exists.
func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		return
	}

	courses := []model.Course{
		{
			Title:        "Go from Zero",
			Description:  "Syntax, tooling and the standard library, one short lesson at a time.",
			ThumbnailURL: "/uploads/seed/go-from-zero.png",
			VideoURL:     "https://www.youtube.com/embed/446E-r0rXHI",
			Sections: []model.Section{
				{Title: "Hello, workspace", Position: 1},
				{Title: "Types and structs", Position: 2},
				{Title: "Errors the Go way", Position: 3},
				{Title: "Goroutines and channels", Position: 4},
			},
		},
		{
			Title:        "Practical SQL",
			Description:  "Modeling, querying and indexing for application developers.",
			ThumbnailURL: "/uploads/seed/practical-sql.png",
			VideoURL:     "https://www.youtube.com/embed/HXV3zeQKqGY",
			Sections: []model.Section{
				{Title: "Schemas and keys", Position: 1},
				{Title: "Joins without fear", Position: 2},
				{Title: "Indexes that matter", Position: 3},
			},
		},
	}

	for _, course := range courses {
		if err := db.Create(&course).Error; err != nil {
			log.Printf("seed course %q failed: %v", course.Title, err)
		}
	}
}
