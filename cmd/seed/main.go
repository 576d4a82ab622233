// Command seed inserts a few demo users and prints a bearer token for each,
// so the API can be exercised locally. User creation and token issuance are
// otherwise external to the server.
package main

import (
	"fmt"
	"log"
	"time"

	"moodlink/backend/internal/config"
	"moodlink/backend/internal/database"
	"moodlink/backend/internal/models"
	"moodlink/backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var demoUsers = []models.User{
	{Username: "alice", Mood: "curious", Interests: []string{"chess", "hiking"}},
	{Username: "bob", Mood: "relaxed", Interests: []string{"guitar"}},
	{Username: "carol", Mood: "focused", Interests: []string{"running", "chess"}},
	{Username: "dave", Mood: "cheerful", Interests: []string{"cooking"}},
}

func main() {
	config.LoadConfig()
	db := database.Connect(config.AppConfig.DatabaseURL)

	for i := range demoUsers {
		user := &demoUsers[i]

		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user.PasswordHash = string(hash)

		if err := db.Where("username = ?", user.Username).FirstOrCreate(user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", user.Username, err)
		}

		token, err := jwt.GenerateToken(user.ID, config.AppConfig.JWTSecret, 24*7*time.Hour)
		if err != nil {
			log.Fatalf("Failed to generate token for %s: %v", user.Username, err)
		}

		fmt.Printf("%s (id=%d): %s\n", user.Username, user.ID, token)
	}
}
