package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	config "taskflow.com/taskflow/internal/configs"
	model "taskflow.com/taskflow/internal/models"
)

// table binds a seed file to the typed loader for its rows. The mapping is
// enumerated here and resolved at compile time; nothing is looked up by
// massaging model-name strings.
type table struct {
	file string
	load func(db *gorm.DB, data []byte) error
}

// tables lists the seed files in dependency order: parents before the rows
// that reference them.
var tables = []table{
	{"team.json", loadInto[model.Team]},
	{"project.json", loadInto[model.Project]},
	{"user.json", loadInto[model.User]},
	{"projectTeam.json", loadInto[model.ProjectTeam]},
	{"task.json", loadInto[model.Task]},
	{"taskAssignment.json", loadInto[model.TaskAssignment]},
	{"attachment.json", loadInto[model.Attachment]},
	{"comment.json", loadInto[model.Comment]},
}

// Run wipes every entity table and reloads the seed files from dir.
// Missing files are skipped, so partial seed sets work.
func Run(db *gorm.DB, dir string) error {
	if err := clearAll(db); err != nil {
		return err
	}

	for _, t := range tables {
		path := filepath.Join(dir, t.file)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				log.Printf("seed: %s not found, skipping", t.file)
				continue
			}
			return fmt.Errorf("read %s: %w", t.file, err)
		}
		if err := t.load(db, data); err != nil {
			return fmt.Errorf("load %s: %w", t.file, err)
		}
		log.Printf("seed: loaded %s", t.file)
	}

	return nil
}

// clearAll deletes in reverse dependency order so children go before the
// rows they reference.
func clearAll(db *gorm.DB) error {
	for i := len(config.Entities) - 1; i >= 0; i-- {
		entity := config.Entities[i]
		session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Delete(entity).Error; err != nil {
			return fmt.Errorf("clear %T: %w", entity, err)
		}
	}
	return nil
}

func loadInto[T any](db *gorm.DB, data []byte) error {
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}
