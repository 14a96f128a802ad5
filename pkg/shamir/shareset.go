package shamir

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/vaultkeep/mersenne-sss/pkg/correlation"
	"github.com/vaultkeep/mersenne-sss/pkg/secret"
)

// ShareSet is an ordered collection of Points plus an optional original
// Secret, present only immediately after a split (spec §3). OperationID is
// an additive, non-wire-format convenience (see SPEC_FULL.md domain stack)
// that lets a caller correlate a ShareSet with the split operation that
// produced it; it is always the zero UUID on a ShareSet parsed from text.
type ShareSet struct {
	Points      []Point
	Secret      *secret.Secret
	OperationID uuid.UUID
}

// newShareSet builds a ShareSet freshly produced by a split, stamping a new
// OperationID.
func newShareSet(points []Point, s *secret.Secret) *ShareSet {
	return &ShareSet{Points: points, Secret: s, OperationID: correlation.NewUUID()}
}

// Format renders the ShareSet in its textual wire form: newline-separated
// shares, each `HEX(x)-HEX(y)` (spec §4.9).
func (ss *ShareSet) Format() string {
	lines := make([]string, len(ss.Points))
	for i, p := range ss.Points {
		lines[i] = p.Encode()
	}
	return strings.Join(lines, "\n")
}

// Values returns the plain "HEX(x)-HEX(y)" share strings, e.g. for handing
// to an external transport.
func (ss *ShareSet) Values() []string {
	out := make([]string, len(ss.Points))
	for i, p := range ss.Points {
		out[i] = p.Encode()
	}
	return out
}

// ParseShareSet parses a newline-separated block of shares into a
// ShareSet with no original Secret attached. Any newline convention is
// accepted and blank lines are ignored (spec §4.9, §6).
func ParseShareSet(text string) (*ShareSet, error) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}

	return ParseShareStrings(lines)
}

// ParseShareStrings parses a slice of individual share strings into a
// ShareSet with no original Secret attached.
func ParseShareStrings(shares []string) (*ShareSet, error) {
	if len(shares) == 0 {
		return nil, fmt.Errorf("%w: no shares provided", ErrInvalidInput)
	}

	points := make([]Point, len(shares))
	for i, s := range shares {
		p, err := ParsePoint(s)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}

	return &ShareSet{Points: points}, nil
}

// Fingerprint returns a keyless BLAKE2b-256 digest over the sorted,
// encoded shares. It lets a caller sanity-check that two independently
// transmitted copies of a ShareSet agree before attempting reconstruction.
// It is a convenience only: Combiner.Reconstruct never consults it, and it
// is not a MAC or commitment — verifiable/authenticated sharing remains an
// explicit non-goal (spec §1, SPEC_FULL.md §5).
func (ss *ShareSet) Fingerprint() [32]byte {
	values := ss.Values()
	sort.Strings(values)
	return blake2b.Sum256([]byte(strings.Join(values, "\n")))
}
