package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/hash-admin-key/main.go <admin-api-key>")
		fmt.Println("Example: go run cmd/hash-admin-key/main.go \"super-secret-admin-key\"")
		os.Exit(1)
	}

	apiKey := os.Args[1]

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Set this in your environment:\n\n")
	fmt.Printf("ADMIN_API_KEY_HASH=%s\n", string(hash))
	fmt.Printf("\nKeep the plain key itself out of configuration; admins send it in the X-Admin-Key header.\n")
}
