package column

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/arloliu/tsblock/internal/options"
)

// DictionaryID identifies the dictionary of a DictionaryColumn.
//
// Columns derived from one another by selection share the dictionary and its
// id, so an id equality check replaces comparing dictionary contents. Two ids are
// equal iff all three components are equal; DictionaryID is comparable and can
// be used as a map key.
type DictionaryID struct {
	mostSignificantBits  uint64
	leastSignificantBits uint64
	sequenceID           uint64
}

// NewDictionaryID creates an id from its components.
func NewDictionaryID(mostSignificantBits, leastSignificantBits, sequenceID uint64) DictionaryID {
	return DictionaryID{
		mostSignificantBits:  mostSignificantBits,
		leastSignificantBits: leastSignificantBits,
		sequenceID:           sequenceID,
	}
}

// MostSignificantBits returns the high 64 bits of the generating node.
func (id DictionaryID) MostSignificantBits() uint64 { return id.mostSignificantBits }

// LeastSignificantBits returns the low 64 bits of the generating node.
func (id DictionaryID) LeastSignificantBits() uint64 { return id.leastSignificantBits }

// SequenceID returns the per-node sequence number.
func (id DictionaryID) SequenceID() uint64 { return id.sequenceID }

func (id DictionaryID) String() string {
	return fmt.Sprintf("%016x%016x-%d", id.mostSignificantBits, id.leastSignificantBits, id.sequenceID)
}

// IDGenerator hands out DictionaryIDs for one node: a random 128-bit node
// identity plus a monotonic sequence. It is safe for concurrent use.
type IDGenerator struct {
	mostSignificantBits  uint64
	leastSignificantBits uint64
	sequence             atomic.Uint64
}

// IDGeneratorOption configures an IDGenerator.
type IDGeneratorOption = options.Option[*IDGenerator]

// WithStartSequence sets the sequence number of the first generated id.
func WithStartSequence(start uint64) IDGeneratorOption {
	return options.NoError(func(g *IDGenerator) {
		g.sequence.Store(start)
	})
}

// NewIDGenerator creates a generator with a random node identity.
//
// Parameters:
//   - opts: Optional configuration (WithStartSequence)
//
// Returns:
//   - *IDGenerator: The generator
//   - error: An option rejected its value
func NewIDGenerator(opts ...IDGeneratorOption) (*IDGenerator, error) {
	node := uuid.New()

	return NewIDGeneratorWithNode(
		binary.BigEndian.Uint64(node[:8]),
		binary.BigEndian.Uint64(node[8:]),
		opts...,
	)
}

// NewIDGeneratorWithNode creates a generator with a fixed node identity. It is
// meant for tests and for processes that derive their node identity elsewhere.
//
// Parameters:
//   - mostSignificantBits: High 64 bits of the node identity
//   - leastSignificantBits: Low 64 bits of the node identity
//   - opts: Optional configuration (WithStartSequence)
//
// Returns:
//   - *IDGenerator: The generator
//   - error: An option rejected its value
func NewIDGeneratorWithNode(mostSignificantBits, leastSignificantBits uint64, opts ...IDGeneratorOption) (*IDGenerator, error) {
	g := &IDGenerator{
		mostSignificantBits:  mostSignificantBits,
		leastSignificantBits: leastSignificantBits,
	}

	if err := options.Apply(g, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// Next returns a new id. Ids from one generator differ only in the sequence.
func (g *IDGenerator) Next() DictionaryID {
	return DictionaryID{
		mostSignificantBits:  g.mostSignificantBits,
		leastSignificantBits: g.leastSignificantBits,
		sequenceID:           g.sequence.Add(1) - 1,
	}
}

var defaultIDGenerator atomic.Pointer[IDGenerator]

func init() {
	g, err := NewIDGenerator()
	if err != nil {
		panic(fmt.Sprintf("failed to create dictionary id generator: %v", err))
	}
	defaultIDGenerator.Store(g)
}

// NextDictionaryID returns a new id from the process-wide generator.
func NextDictionaryID() DictionaryID {
	return defaultIDGenerator.Load().Next()
}

// SetDefaultIDGenerator replaces the process-wide generator and returns the
// previous one, so tests can install a deterministic generator and restore it.
// A nil generator leaves the current one in place.
func SetDefaultIDGenerator(g *IDGenerator) *IDGenerator {
	if g == nil {
		return defaultIDGenerator.Load()
	}

	return defaultIDGenerator.Swap(g)
}
