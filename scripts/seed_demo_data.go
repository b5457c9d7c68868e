package main

import (
	"fmt"
	"log"
	"os"

	"project-showcase-backend/internal/config"
	"project-showcase-backend/internal/database"
	"project-showcase-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed data structures matching the YAML file layout

type UserData struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
	Status   string `yaml:"status"`
}

type ProjectData struct {
	OwnerUsername    string   `yaml:"owner_username"`
	Title            string   `yaml:"title"`
	ShortDescription string   `yaml:"short_description"`
	Description      string   `yaml:"description,omitempty"`
	Branch           string   `yaml:"branch,omitempty"`
	ProjectType      string   `yaml:"project_type,omitempty"`
	GithubURL        string   `yaml:"github_url,omitempty"`
	Status           string   `yaml:"status,omitempty"`
	Upvoters         []string `yaml:"upvoters,omitempty"`
	Stargazers       []string `yaml:"stargazers,omitempty"`
}

type SeedFile struct {
	Users    []UserData    `yaml:"users"`
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	path := "scripts/seed_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel: logger.Warn,
	})
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read seed file %s: %v", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	if err := loadSeed(db, &seed); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("seed complete: %d users, %d projects", len(seed.Users), len(seed.Projects))
}

func loadSeed(db *gorm.DB, seed *SeedFile) error {
	usersByName := make(map[string]*models.User, len(seed.Users))

	for _, u := range seed.Users {
		user := &models.User{
			Username: u.Username,
			Email:    u.Email,
			FullName: u.FullName,
			Role:     models.UserRole(u.Role),
			Status:   models.UserStatus(u.Status),
		}
		if user.Role == "" {
			user.Role = models.UserRoleStudent
		}
		if user.Status == "" {
			user.Status = models.UserStatusActive
		}

		var existing models.User
		err := db.First(&existing, "username = ?", u.Username).Error
		if err == nil {
			usersByName[u.Username] = &existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up user %q: %w", u.Username, err)
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %q: %w", u.Username, err)
		}
		usersByName[u.Username] = user
	}

	for _, p := range seed.Projects {
		owner, ok := usersByName[p.OwnerUsername]
		if !ok {
			return fmt.Errorf("project %q references unknown owner %q", p.Title, p.OwnerUsername)
		}

		status := models.ProjectStatus(p.Status)
		if status == "" {
			status = models.ProjectStatusActive
		}

		project := &models.Project{
			OwnerID:          owner.ID,
			Title:            p.Title,
			ShortDescription: p.ShortDescription,
			Description:      p.Description,
			Branch:           p.Branch,
			ProjectType:      p.ProjectType,
			GithubURL:        p.GithubURL,
			Status:           status,
		}

		var existing models.Project
		err := db.First(&existing, "title = ? AND owner_id = ?", p.Title, owner.ID).Error
		if err == nil {
			continue // already seeded
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up project %q: %w", p.Title, err)
		}
		if err := db.Create(project).Error; err != nil {
			return fmt.Errorf("failed to create project %q: %w", p.Title, err)
		}

		for _, username := range p.Upvoters {
			voter, ok := usersByName[username]
			if !ok {
				return fmt.Errorf("project %q references unknown upvoter %q", p.Title, username)
			}
			vote := &models.ProjectVote{
				ProjectID: project.ID,
				UserID:    voter.ID,
				VoteType:  models.VoteTypeUpvote,
			}
			if err := db.Create(vote).Error; err != nil {
				return fmt.Errorf("failed to create vote on %q: %w", p.Title, err)
			}
		}

		for _, username := range p.Stargazers {
			stargazer, ok := usersByName[username]
			if !ok {
				return fmt.Errorf("project %q references unknown stargazer %q", p.Title, username)
			}
			star := &models.ProjectStar{
				ProjectID: project.ID,
				UserID:    stargazer.ID,
			}
			if err := db.Create(star).Error; err != nil {
				return fmt.Errorf("failed to create star on %q: %w", p.Title, err)
			}
		}
	}

	return nil
}
