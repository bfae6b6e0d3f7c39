package terminal

import (
	"os"
	"os/user"
	"strings"
	"terminal-blackjack/internal/util"
)

// lookupUser is swapped out by tests
var lookupUser = user.Current

// Username returns the name of the logged in user
// It falls back to $USER, then $USERNAME, then a random table nickname.
func Username() string {
	if u, err := lookupUser(); err == nil {
		if name := strings.TrimSpace(u.Username); name != "" {
			// strip a Windows domain
			if i := strings.LastIndex(name, `\`); i >= 0 {
				name = name[i+1:]
			}

			return name
		}
	}

	for _, key := range []string{"USER", "USERNAME"} {
		if name := strings.TrimSpace(os.Getenv(key)); name != "" {
			return name
		}
	}

	return util.GetRandomName()
}
