package mocksmith

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Source provides every primitive random draw the synthesizers consume.
// One Source instance is threaded by reference through the whole call tree
// of a top-level Generate, so sequential draws are ordered and a single
// seed governs the entire generated value. Reusing a Source across
// invocations continues its stream; callers wanting independent outputs
// must reseed or construct a fresh Source.
type Source interface {
	// Seed reseeds the underlying stream. Multiple seed words are folded
	// into one 64-bit state; order matters.
	Seed(seed ...uint64)

	Bool() bool
	// IntBetween draws uniformly from [min, max] inclusive, swapping the
	// bounds when inverted.
	IntBetween(min, max int) int
	Float64Between(min, max float64) float64
	// DateBetween draws uniformly from [min, max]. When max precedes min
	// it returns min.
	DateBetween(min, max time.Time) time.Time

	// Letters returns n random lowercase letters.
	Letters(n int) string
	Word() string
	// WordOfLength returns a dictionary word of exactly n letters when one
	// turns up within a bounded number of draws, otherwise n random letters.
	WordOfLength(n int) string

	Email() string
	Name() string
	FirstName() string
	LastName() string
	Username() string
	URL() string
	Phone() string
	UUID() string
	HexColor() string
	Color() string
	City() string
	Country() string
	Company() string
	JobTitle() string
	IPv4() string
	IPv6() string

	// Regex returns a string matching the given pattern.
	Regex(pattern string) string
}

const pcgStreamSalt = 0xda3e39cb94b95bdb

// NewSource returns the default Source, backed by a seeded PCG stream
// shared between the faker and the raw draws. With no seed words the
// stream starts from a random state.
func NewSource(seed ...uint64) Source {
	s := foldSeed(seed)
	pcg := rand.NewPCG(s, s^pcgStreamSalt)
	return &fakerSource{
		pcg:   pcg,
		rng:   rand.New(pcg),
		faker: gofakeit.NewFaker(pcg, false),
	}
}

// foldSeed collapses a seed sequence into a single 64-bit state with
// splitmix-style mixing so that order is significant.
func foldSeed(seeds []uint64) uint64 {
	if len(seeds) == 0 {
		return rand.Uint64()
	}
	h := uint64(0x9e3779b97f4a7c15)
	for _, s := range seeds {
		h = splitmix(h ^ splitmix(s))
	}
	return h
}

func splitmix(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

type fakerSource struct {
	pcg   *rand.PCG
	rng   *rand.Rand
	faker *gofakeit.Faker
}

func (f *fakerSource) Seed(seed ...uint64) {
	s := foldSeed(seed)
	f.pcg.Seed(s, s^pcgStreamSalt)
}

func (f *fakerSource) Bool() bool { return f.faker.Bool() }

func (f *fakerSource) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + f.rng.IntN(max-min+1)
}

func (f *fakerSource) Float64Between(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + f.rng.Float64()*(max-min)
}

func (f *fakerSource) DateBetween(min, max time.Time) time.Time {
	if !max.After(min) {
		return min
	}
	d := f.rng.Int64N(max.Sub(min).Nanoseconds() + 1)
	return min.Add(time.Duration(d))
}

func (f *fakerSource) Letters(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.ToLower(f.faker.LetterN(uint(n)))
}

func (f *fakerSource) Word() string { return f.faker.Word() }

func (f *fakerSource) WordOfLength(n int) string {
	if n <= 0 {
		return ""
	}
	// A handful of dictionary draws keeps output word-like; past that the
	// exact length wins.
	for i := 0; i < 16; i++ {
		if w := f.faker.Word(); len(w) == n {
			return w
		}
	}
	return f.Letters(n)
}

func (f *fakerSource) Email() string     { return f.faker.Email() }
func (f *fakerSource) Name() string      { return f.faker.Name() }
func (f *fakerSource) FirstName() string { return f.faker.FirstName() }
func (f *fakerSource) LastName() string  { return f.faker.LastName() }
func (f *fakerSource) Username() string  { return f.faker.Username() }
func (f *fakerSource) URL() string       { return f.faker.URL() }
func (f *fakerSource) Phone() string     { return f.faker.PhoneFormatted() }
func (f *fakerSource) HexColor() string  { return f.faker.HexColor() }
func (f *fakerSource) Color() string     { return f.faker.Color() }
func (f *fakerSource) City() string      { return f.faker.City() }
func (f *fakerSource) Country() string   { return f.faker.Country() }
func (f *fakerSource) Company() string   { return f.faker.Company() }
func (f *fakerSource) JobTitle() string  { return f.faker.JobTitle() }
func (f *fakerSource) IPv4() string      { return f.faker.IPv4Address() }
func (f *fakerSource) IPv6() string      { return f.faker.IPv6Address() }

func (f *fakerSource) UUID() string {
	id, err := uuid.NewRandomFromReader(rngReader{f.rng})
	if err != nil {
		return f.faker.UUID()
	}
	return id.String()
}

func (f *fakerSource) Regex(pattern string) string { return f.faker.Regex(pattern) }

// rngReader adapts the seeded stream to io.Reader for uuid generation, so
// UUIDs stay deterministic under a seed.
type rngReader struct{ r *rand.Rand }

func (r rngReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}
