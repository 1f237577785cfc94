package migration

import (
	"github.com/antera/antera-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for every model. Existing tables are altered
// in place; the unique indexes on connections (pair_low, pair_high),
// conversations (user1_id, user2_id), likes, user_skills and
// job_applications are created here.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Company{},
		&domain.Connection{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.Post{},
		&domain.Like{},
		&domain.Comment{},
		&domain.Experience{},
		&domain.Education{},
		&domain.Skill{},
		&domain.UserSkill{},
		&domain.Job{},
		&domain.JobApplication{},
	)
}
