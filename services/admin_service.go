package services

import (
	"relay-desk/domain/relay"
	"relay-desk/repositories"

	"github.com/samber/lo"
)

// AdminService backs the operator's administrative commands: listing,
// statistics and the block state machine.
type AdminService struct {
	registry repositories.IRegistry
}

func NewAdminService(registry repositories.IRegistry) *AdminService {
	return &AdminService{registry: registry}
}

func (s *AdminService) ListActiveUsers() []relay.User {
	return s.registry.ListActiveUsers()
}

func (s *AdminService) Stats() relay.Stats {
	users := s.registry.ListActiveUsers()
	total := lo.SumBy(users, func(user relay.User) int { return len(user.Messages) })

	stats := relay.Stats{TotalUsers: len(users), TotalMessages: total}
	if len(users) > 0 {
		stats.AverageMessages = float64(total) / float64(len(users))
	}
	return stats
}

func (s *AdminService) Block(id int64) error {
	return s.registry.SetActive(id, false)
}

func (s *AdminService) Unblock(id int64) error {
	return s.registry.SetActive(id, true)
}
