// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with fake users, posts, comments, likes
// and a friendship mesh.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes the full seeding pass.
func (s *Seeder) Run(opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, continuing anyway...")
		}
	}

	users, err := s.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	posts, err := s.CreatePosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := s.CreateFriendshipMesh(users); err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}
	log.Println("✓ friendship mesh created")

	if err := s.CreateEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Println("✓ comments and likes created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

// ClearAll removes all seeded data.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	for _, table := range []string{"comments", "likes", "friendships", "posts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateUsers persists count users. All of them share the password
// "password123" so any seeded account can be logged into.
func (s *Seeder) CreateUsers(count int) ([]models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user := models.User{
			Username:       fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Password:       string(hashedPassword),
			Bio:            gofakeit.Sentence(10),
			ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := s.db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", user.Username, err)
			continue
		}
		users = append(users, user)
		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

// CreatePosts persists count posts spread across the users with realistic
// created_at timestamps over the last 90 days.
func (s *Seeder) CreatePosts(users []models.User, count int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		user := users[s.r.Intn(len(users))]

		post := models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(1, 3, 5, "\n"),
			UserID:  user.ID,
		}
		if s.r.Float32() < 0.4 {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
		}
		post.CreatedAt = time.Now().
			Add(-time.Duration(s.r.Intn(90*24)) * time.Hour).
			Add(-time.Duration(s.r.Intn(60)) * time.Minute)

		if err := s.db.Create(&post).Error; err != nil {
			log.Printf("Failed to create post: %v", err)
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// CreateFriendshipMesh links users into accepted friendships and sprinkles
// in some still-pending requests. Each unordered pair gets at most one row.
func (s *Seeder) CreateFriendshipMesh(users []models.User) error {
	for i := range users {
		for j := i + 1; j < len(users); j++ {
			roll := s.r.Float32()
			if roll > 0.15 {
				continue
			}

			status := models.FriendshipStatusAccepted
			if roll > 0.10 {
				status = models.FriendshipStatusPending
			}

			requester, addressee := users[i], users[j]
			if s.r.Intn(2) == 0 {
				requester, addressee = addressee, requester
			}

			friendship := models.Friendship{
				RequesterID: requester.ID,
				AddresseeID: addressee.ID,
				Status:      status,
			}
			if err := s.db.Create(&friendship).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateEngagement adds comments and likes to the seeded posts.
func (s *Seeder) CreateEngagement(users []models.User, posts []models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	for _, post := range posts {
		for c := s.r.Intn(5); c > 0; c-- {
			comment := models.Comment{
				Content: gofakeit.Sentence(12),
				UserID:  users[s.r.Intn(len(users))].ID,
				PostID:  post.ID,
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return err
			}
		}

		// Pick distinct likers; the unique pair index forbids repeats.
		likers := s.r.Perm(len(users))
		numLikes := s.r.Intn(len(users)/2 + 1)
		for _, idx := range likers[:numLikes] {
			like := models.Like{
				UserID: users[idx].ID,
				PostID: post.ID,
			}
			if err := s.db.Create(&like).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
