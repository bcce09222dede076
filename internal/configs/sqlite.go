package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "taskflow.com/taskflow/internal/models"
)

// Entities is the full set of persisted kinds, in dependency order:
// parents first, so migration and seeding can walk it forward and cleanup
// can walk it backward.
var Entities = []interface{}{
	&model.Team{},
	&model.Project{},
	&model.User{},
	&model.ProjectTeam{},
	&model.Task{},
	&model.TaskAssignment{},
	&model.Attachment{},
	&model.Comment{},
	&model.Notification{},
}

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(Entities...); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
