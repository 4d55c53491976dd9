package services

import (
	"math/rand"
	"time"

	"github.com/craftline/contentflow-api/internal/models"
)

// AssigneePicker chooses a staff member from a role-filtered candidate list
// during task generation. Selection is a seeding convenience, not a contract:
// callers must never depend on which qualified member comes back.
type AssigneePicker interface {
	Pick(members []models.StaffMember) *models.StaffMember
}

// RandomPicker picks a pseudo-random candidate.
type RandomPicker struct {
	rng *rand.Rand
}

func NewRandomPicker() *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *RandomPicker) Pick(members []models.StaffMember) *models.StaffMember {
	if len(members) == 0 {
		return nil
	}
	return &members[p.rng.Intn(len(members))]
}

// RoundRobinPicker cycles through candidates per role. Deterministic, used in
// tests and available for deployments that want even workload spread.
type RoundRobinPicker struct {
	next map[models.StaffRole]int
}

func NewRoundRobinPicker() *RoundRobinPicker {
	return &RoundRobinPicker{next: make(map[models.StaffRole]int)}
}

func (p *RoundRobinPicker) Pick(members []models.StaffMember) *models.StaffMember {
	if len(members) == 0 {
		return nil
	}
	role := members[0].Role
	i := p.next[role] % len(members)
	p.next[role]++
	return &members[i]
}
