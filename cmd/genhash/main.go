// cmd/genhash/main.go — prints a bcrypt hash for the given password.
// Usage: go run cmd/genhash/main.go <password>
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: genhash <password>")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}
	fmt.Println(string(hash))
}
