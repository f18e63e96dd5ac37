package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/fsnd-projects/fsnd-api/cmd/fsndctl/commands"
)

func main() {
	commands.Execute()
}
