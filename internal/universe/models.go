package universe

import (
	"time"
)

// Universe is the root record of one generated world. The master seed is the
// only authoritative state: every galaxy, system and body is recomputed from
// it on demand. Regenerating the seed is deliberately the one
// "randomize everything" operation and invalidates all derived content.
type Universe struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	MasterSeed int32     `json:"master_seed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateRequest is the payload for universe creation. MasterSeed is optional;
// when absent a random seed is drawn once at creation time.
type CreateRequest struct {
	Name       string `json:"name"`
	MasterSeed *int32 `json:"master_seed,omitempty"`
}
