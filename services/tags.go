package services

import (
	"errors"
	"strings"

	"tasknest/model"

	"gorm.io/gorm"
)

// ResolveTags maps a comma-separated string of tag names to Tag records,
// creating missing ones. Names are trimmed; blanks and duplicates are
// skipped, so the result is a set. Creation races against an identical name
// lose to the unique index on tags.name, in which case the winner's row is
// fetched instead.
func ResolveTags(db *gorm.DB, raw string) ([]model.Tag, error) {
	seen := make(map[string]bool)
	var tags []model.Tag

	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		var tag model.Tag
		err := db.Where("name = ?", name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = model.Tag{Name: name}
			if createErr := db.Create(&tag).Error; createErr != nil {
				// Lost a create race; the row exists now.
				if fetchErr := db.Where("name = ?", name).First(&tag).Error; fetchErr != nil {
					return nil, createErr
				}
			}
		} else if err != nil {
			return nil, err
		}

		tags = append(tags, tag)
	}

	return tags, nil
}

// SyncTags replaces the task's tag associations with exactly the given set.
func SyncTags(db *gorm.DB, task *model.Task, tags []model.Tag) error {
	if len(tags) == 0 {
		return db.Model(task).Association("Tags").Clear()
	}
	return db.Model(task).Association("Tags").Replace(tags)
}
