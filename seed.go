package truchet

import (
	"fmt"
	"math/rand"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Random is the seeded random source handed to a single generation.
// It is not safe for concurrent use; give each generation its own.
type Random struct {
	seed int64
	rnd  *rand.Rand
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// Init creates a Random.
// `hexSeed` is either the empty string (derive from the clock) or a hex value
func Init(hexSeed string) (*Random, error) {
	if hexSeed == "" {
		return NewRandom(time.Now().UnixNano() - epoch2020), nil
	}
	seed, err := ParseSeed(hexSeed)
	if err != nil {
		return nil, err
	}
	return NewRandom(seed), nil
}

// NewRandom returns a source positioned at the start of `seed`'s sequence.
func NewRandom(seed int64) *Random {
	return &Random{seed: seed, rnd: rand.New(rand.NewSource(seed))}
}

// ParseSeed parses the seed part of a filename
func ParseSeed(hexSeed string) (int64, error) {
	seed, err := strconv.ParseInt(hexSeed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("bad seed %q: %w", hexSeed, err)
	}
	return seed, nil
}

// Next returns the next value in [0,1)
func (r *Random) Next() float64 {
	return r.rnd.Float64()
}

// Reset restarts the sequence from the seed
func (r *Random) Reset() {
	r.rnd.Seed(r.seed)
}

// Seed returns the rand initialization seed
func (r *Random) Seed() int64 {
	return r.seed
}

// Hex returns the seed as it appears in filenames
func (r *Random) Hex() string {
	return fmt.Sprintf("%x", r.seed)
}

// GetFilename returns a string to use for this file
func (r *Random) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%s%s", prefix, getGitHash(), r.Hex(), ext)
}

func getGitHash() string {
	var (
		cmdOut []byte
		err    error
	)
	cmdName := "git"
	cmdArgs := []string{"rev-parse", "--verify", "HEAD"}
	if cmdOut, err = exec.Command(cmdName, cmdArgs...).Output(); err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) < 7 {
		return hash
	}
	return hash[0:7]
}
