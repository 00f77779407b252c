package main

import (
	"context"
	"log"

	"askhub/internal/cache"
	"askhub/internal/config"
	"askhub/internal/db"
	"askhub/internal/model"
	"askhub/internal/repository"
	"askhub/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Answer{},
		&model.Vote{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	userRepo := repository.NewUserRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)
	answerRepo := repository.NewAnswerRepository(gormDB)
	userService := service.NewUserService(userRepo, cacheClient)

	ctx := context.Background()

	seeds := []service.UserSeed{
		{Name: "Alice Admin", Email: "alice@example.com", Password: "password123", Role: model.RoleAdmin, Department: "engineering"},
		{Name: "Bob Builder", Email: "bob@example.com", Password: "password123", Role: model.RoleMember, Department: "engineering"},
		{Name: "Carol Closer", Email: "carol@example.com", Password: "password123", Role: model.RoleMember, Department: "sales"},
		{Name: "Mallory Moderator", Email: "mallory@example.com", Password: "password123", Role: model.RoleModerator, Department: "support"},
	}

	count, err := userService.SeedUsers(ctx, seeds)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d users", count)

	users := make(map[string]*model.User, len(seeds))
	for _, seed := range seeds {
		user, err := userRepo.FindByEmail(ctx, seed.Email)
		if err != nil {
			log.Fatalf("Failed to look up seeded user %s: %v", seed.Email, err)
		}
		users[seed.Email] = user
	}

	question := &model.Question{
		AuthorID: users["bob@example.com"].ID,
		Title:    "How do we rotate the staging database credentials?",
		Body:     "The staging credentials expired again. What is the current rotation procedure?",
	}
	if err := questionRepo.Create(ctx, question); err != nil {
		log.Fatalf("Failed to seed question: %v", err)
	}

	answers := []*model.Answer{
		{
			QuestionID:     question.ID,
			AuthorID:       users["alice@example.com"].ID,
			Body:           "Use the self-service rotation page on the ops portal.",
			VisibilityType: model.VisibilityPublic,
		},
		{
			QuestionID:           question.ID,
			AuthorID:             users["carol@example.com"].ID,
			Body:                 "Engineering keeps a runbook with the exact vault paths.",
			VisibilityType:       model.VisibilityDepartments,
			VisibleToDepartments: model.StringList{"engineering"},
		},
		{
			QuestionID:     question.ID,
			AuthorID:       users["mallory@example.com"].ID,
			Body:           "Moderators can also reset them through the admin console.",
			VisibilityType: model.VisibilityRoles,
			VisibleToRoles: model.StringList{model.RoleModerator},
		},
		{
			QuestionID:     question.ID,
			AuthorID:       users["alice@example.com"].ID,
			Body:           "Bob, ping me directly and I will walk you through it.",
			VisibilityType: model.VisibilitySpecificUsers,
			VisibleToUsers: model.UintList{users["bob@example.com"].ID},
		},
	}
	for _, answer := range answers {
		if err := answerRepo.Create(ctx, answer); err != nil {
			log.Fatalf("Failed to seed answer: %v", err)
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users: %d", len(seeds))
	log.Printf("  - Questions: 1")
	log.Printf("  - Answers: %d", len(answers))
}
