// Command seed populates the development database with demo data.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"talento/internal/bootstrap"
	"talento/internal/middleware"
	"talento/internal/seed"
)

func main() {
	_ = godotenv.Load()

	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to create")
	flag.IntVar(&opts.Posts, "posts", opts.Posts, "number of event posts to create")
	flag.IntVar(&opts.CommentsPerPost, "comments", opts.CommentsPerPost, "comments per post")
	flag.StringVar(&opts.Password, "password", opts.Password, "password for all seeded users")
	flag.Parse()

	rt, err := bootstrap.InitRuntime()
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}
	defer rt.Close()

	middleware.SetupLogger(rt.Config.Env)

	if err := seed.Run(rt.DB, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
