package errors

import "fmt"

var (
	ErrUserNotFound   = fmt.Errorf("user not found")
	ErrInvalidTarget  = fmt.Errorf("reply target is not a known user")
	ErrNoActiveUsers  = fmt.Errorf("no active users")
	ErrInvalidCommand = fmt.Errorf("invalid command")
)
