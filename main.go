package main

import (
	"github.com/joho/godotenv"
	"github.com/nikogura/resume-review/cmd"
)

func main() {
	// Optional .env file for local overrides such as RESUME_REVIEW_CRITERIA.
	_ = godotenv.Load()

	cmd.Execute()
}
