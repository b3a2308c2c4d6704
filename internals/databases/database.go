package databases

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"coursehub_backend/internals/configs"
	courseModel "coursehub_backend/internals/features/academics/courses/model"
	progressModel "coursehub_backend/internals/features/academics/progress/model"
	studentModel "coursehub_backend/internals/features/academics/students/model"
	teacherModel "coursehub_backend/internals/features/academics/teachers/model"
	userModel "coursehub_backend/internals/features/users/auth/model"
)

func ConnectDB(cfg *configs.Config) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true, // safe behind PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// TranslateError stays off: duplicate-key handling inspects the raw
		// pgconn.PgError so it can name the violated constraint.
	})
	if err != nil {
		log.Fatalf("[ERROR] failed to connect database: %v", err)
	}
	log.Println("[INFO] database connected")
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[ERROR] cannot access sql.DB for pool tuning: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate creates the schema. The unique indexes declared on the models are
// the source of truth for uniqueness; the repositories' existence pre-checks
// only exist to produce a friendly message first.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&studentModel.StudentModel{},
		&teacherModel.TeacherModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseEnrollmentModel{},
		&progressModel.CourseProgressModel{},
		&progressModel.LectureProgressModel{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] migration complete")
}
