// Command hashpwd generates the bcrypt hash for the internal user's
// password, ready to paste into the environment.
//
// Usage: hashpwd <password>
package main

import (
	"fmt"
	"os"

	"lead_intake_backend/internal/auth/password"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpwd <password>")
		os.Exit(2)
	}

	hash, err := password.Hash(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to hash password:", err)
		os.Exit(1)
	}

	fmt.Printf("INTERNAL_USER_PASSWORD_HASH=%s\n", hash)
}
