// =============================================================================
// txgen - Persona Name Provider
// =============================================================================
//
// Display names for the preview table printed by `txgen generate --preview`.
// Names are flavor text only: they never feed a dataset column and no
// invariant depends on them.
//
// Two interchangeable providers exist: a gofakeit-backed one (seeded for
// reproducible previews) and a static fallback that cycles fixed lists.
//
// =============================================================================

package persona

import (
	"github.com/brianvoe/gofakeit/v7"
)

// Namer produces display names for preview output.
type Namer interface {
	// PersonName returns a sender/receiver display name.
	PersonName() string

	// MerchantName returns a merchant display name.
	MerchantName() string
}

// FakeNamer generates names with gofakeit from a seeded faker instance.
type FakeNamer struct {
	faker *gofakeit.Faker
}

// NewFake returns a seeded gofakeit-backed Namer.
func NewFake(seed int64) *FakeNamer {
	return &FakeNamer{faker: gofakeit.New(uint64(seed))}
}

func (n *FakeNamer) PersonName() string {
	return n.faker.Name()
}

func (n *FakeNamer) MerchantName() string {
	return n.faker.Company()
}

// StaticNamer is the deterministic fallback: it cycles fixed name lists.
type StaticNamer struct {
	people    []string
	merchants []string
	personIdx int
	merchIdx  int
}

// NewStatic returns the fallback Namer.
func NewStatic() *StaticNamer {
	return &StaticNamer{
		people: []string{
			"Aarav Sharma", "Priya Patel", "Rohan Gupta", "Ananya Iyer",
			"Vikram Singh", "Kavya Reddy", "Arjun Nair", "Meera Joshi",
		},
		merchants: []string{
			"Sharma General Store", "City Grocers", "QuickFuel Services",
			"Star Cinemas", "Metro Utilities",
		},
	}
}

func (n *StaticNamer) PersonName() string {
	name := n.people[n.personIdx%len(n.people)]
	n.personIdx++
	return name
}

func (n *StaticNamer) MerchantName() string {
	name := n.merchants[n.merchIdx%len(n.merchants)]
	n.merchIdx++
	return name
}
