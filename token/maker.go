package token

import "time"

// Maker defines a contract for anything that can create and verify tokens.
// Allows swapping token implementations without changing the rest of the
// application logic.
type Maker interface {
	CreateToken(email string, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
