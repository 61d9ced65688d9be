package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/studyconnect/backend/internal/auth"
	"github.com/studyconnect/backend/internal/config"
	"github.com/studyconnect/backend/internal/model"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(initDBCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

var rootCmd = &cobra.Command{
	Use:   "studyctl",
	Short: "studyctl manages the StudyConnect database",
	Long:  `studyctl initializes, migrates, and seeds the StudyConnect Postgres database.`,
}

func connString() string {
	if dbConnString != "" {
		return dbConnString
	}
	cfg := config.Load()
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Install required Postgres extensions",
	Long:  `Install the citext and pgcrypto extensions the schema depends on.`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := sql.Open("postgres", connString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		for _, ext := range []string{"citext", "pgcrypto"} {
			if _, err := db.Exec(fmt.Sprintf("CREATE EXTENSION IF NOT EXISTS %s", ext)); err != nil {
				log.Fatalf("Failed to install extension %s: %v", ext, err)
			}
			if verbose {
				fmt.Printf("Extension %s installed\n", ext)
			}
		}

		fmt.Println("Database initialized successfully")
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema to the database",
	Long:  `Migrate all application tables to their current definitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := gorm.Open(postgres.Open(connString()), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		err = db.AutoMigrate(
			&model.User{},
			&model.Group{},
			&model.Tag{},
			&model.Membership{},
			&model.Notification{},
			&model.Message{},
			&model.Question{},
			&model.Answer{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Migration applied successfully")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo data",
	Long:  `Create a demo user and study group for local development.`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := gorm.Open(postgres.Open(connString()), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		hasher := auth.NewPasswordHasher()
		hashed, err := hasher.Hash("changeme123")
		if err != nil {
			log.Fatalf("Failed to hash seed password: %v", err)
		}

		user := model.User{
			Name:     "Demo Student",
			Email:    "demo@studyconnect.local",
			Password: hashed,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create seed user: %v", err)
		}

		group := model.Group{
			Subject:      "Intro to Algorithms",
			SmallDesc:    "Weekly problem-solving sessions",
			Description:  "We work through sorting, graphs, and dynamic programming together.",
			Date:         time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
			StartTime:    time.Now().Add(24 * time.Hour),
			EndTime:      time.Now().Add(26 * time.Hour),
			Capacity:     8,
			TypeOfStudy:  "exam prep",
			ScheduleType: "weekly",
			Language:     "English",
			Location:     "Library, Room 2B",
			CreatedBy:    user.ID,
		}
		if err := db.Create(&group).Error; err != nil {
			log.Fatalf("Failed to create seed group: %v", err)
		}

		membership := model.Membership{
			UserID:  user.ID,
			GroupID: group.ID,
			Role:    model.RoleAdmin,
			Status:  model.StatusApproved,
		}
		if err := db.Create(&membership).Error; err != nil {
			log.Fatalf("Failed to create seed membership: %v", err)
		}

		fmt.Println("Seed data created successfully")
		if verbose {
			fmt.Printf("User: %s (%s)\n", user.Email, user.ID)
			fmt.Printf("Group: %s (%s)\n", group.Subject, group.ID)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
