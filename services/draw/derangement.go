package draw

import (
	"math/rand"
	"slices"

	"Santa/models"
	"Santa/utils/apperr"

	"github.com/google/uuid"
)

// Pair is one giver/receiver assignment with the token the giver uses to reach it.
type Pair struct {
	Giver    models.ID
	Receiver models.ID
	Token    string
}

// Generate shuffles the participants and makes each one give to the next, wrapping
// around. The result is a single cycle, so nobody draws themselves and everybody
// gives and receives exactly once.
func Generate(participants []models.ID) ([]Pair, error) {
	if len(participants) < 2 {
		return nil, apperr.NewInsufficientParticipants("Not enough participants for draw")
	}
	seen := make(map[models.ID]struct{}, len(participants))
	for _, p := range participants {
		if _, dup := seen[p]; dup {
			return nil, apperr.NewValidation("Participants must be distinct")
		}
		seen[p] = struct{}{}
	}

	order := slices.Clone(participants)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	pairs := make([]Pair, len(order))
	for i, giver := range order {
		pairs[i] = Pair{
			Giver:    giver,
			Receiver: order[(i+1)%len(order)],
			Token:    uuid.NewString(),
		}
	}
	return pairs, nil
}
