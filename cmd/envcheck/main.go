// Command envcheck verifies that the bot's required environment variables are
// present before a deploy, without starting the server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/naseer2426/whatsapp-gemini-bot/internal/config"
)

func main() {
	// .env is optional here too; variables may come from the environment
	_ = godotenv.Load()

	missing := config.Missing()
	if len(missing) > 0 {
		fmt.Fprintln(os.Stderr, "missing required environment variables:")
		for _, name := range missing {
			fmt.Fprintf(os.Stderr, "  - %s\n", name)
		}
		os.Exit(1)
	}

	fmt.Println("✅ all required environment variables are set")
}
