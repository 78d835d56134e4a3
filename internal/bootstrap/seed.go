package bootstrap

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yrwanda/practicelog/internal/model"
)

// SeedDemoUser creates a demo account with a couple of actions so the API
// is explorable right after first boot. Development environments only.
func SeedDemoUser(db *gorm.DB, log *zap.SugaredLogger) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("username = ?", "demo").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug("demo user already exists, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("practice123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     "demo",
		PasswordHash: string(hashed),
		CreateTime:   time.Now().UTC(),
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	for _, name := range []string{"morning stretch", "practice guitar", "read 20 pages"} {
		action := &model.PracticeAction{
			UserID:     user.ID,
			Name:       name,
			CreateTime: time.Now().UTC(),
		}
		if err := db.Create(action).Error; err != nil {
			return err
		}
	}

	log.Infow("demo user seeded", "username", "demo", "password", "practice123")
	return nil
}
