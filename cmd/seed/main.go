// Command main populates the database with demo data.
package main

import (
	"flag"
	"log"

	"forumapi/internal/config"
	"forumapi/internal/database"
	"forumapi/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to create")
	flag.IntVar(&opts.ThreadsPerUser, "threads", opts.ThreadsPerUser, "threads per user")
	flag.IntVar(&opts.CommentsPerThread, "comments", opts.CommentsPerThread, "comments per thread")
	flag.IntVar(&opts.RepliesPerComment, "replies", opts.RepliesPerComment, "replies per comment")
	flag.Float64Var(&opts.LikeRatio, "like-ratio", opts.LikeRatio, "chance a user likes a comment")
	flag.BoolVar(&opts.SkipBcrypt, "skip-bcrypt", opts.SkipBcrypt, "store plaintext passwords (fast dev seeding)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
