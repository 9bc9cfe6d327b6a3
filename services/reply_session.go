package services

import "sync"

// ReplySession binds the operator's next bare message to a target user.
// One slot is enough: the relay supports exactly one operator identity.
// The target has no expiry; it stays until overwritten by a new selection.
type ReplySession struct {
	mu     sync.Mutex
	target int64
	set    bool
}

func NewReplySession() *ReplySession {
	return &ReplySession{}
}

// SetTarget overwrites any existing target unconditionally.
func (s *ReplySession) SetTarget(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = id
	s.set = true
}

// Target reads without clearing.
func (s *ReplySession) Target() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target, s.set
}
