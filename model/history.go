package model

import (
	"crypto/md5"
	"fmt"
)

// historySize covers still lifes and oscillators of period up to 3
const historySize = 3

// Hash returns an MD5 digest of the current generation
func (u *Universe) Hash() string {
	h := md5.New()
	h.Write(u.Cells().Bytes())
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History keeps the hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Observe records u's current state and reports whether it repeats one of
// the recorded states. Nothing is reported until the window is full.
func (h *History) Observe(u *Universe) (stagnant bool) {
	current := u.Hash()
	if len(h.hashes) == historySize {
		for _, prev := range h.hashes {
			if prev == current {
				stagnant = true
				break
			}
		}
	}

	h.hashes = append(h.hashes, current)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}
