package eqclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/derickeddington/graphequiv/eqclass"
)

// TestSameClass_FirstEncounterIsFalse verifies that SameClass always
// reports false the first time a pair is seen, regardless of which or how
// many of the two identities already exist in the table.
func TestSameClass_FirstEncounterIsFalse(t *testing.T) {
	t.Parallel()

	tbl := eqclass.New[string]()

	assert.False(t, tbl.SameClass("a", "b"), "neither seen before")
	assert.False(t, tbl.SameClass("a", "c"), "a seen, c new")
	assert.False(t, tbl.SameClass("d", "b"), "b seen, d new")
}

// TestSameClass_Reflexive verifies that a value is always in the same
// class as itself once recorded.
func TestSameClass_Reflexive(t *testing.T) {
	t.Parallel()

	tbl := eqclass.New[int]()

	tbl.SameClass(1, 2)
	assert.True(t, tbl.SameClass(1, 1))
	assert.True(t, tbl.SameClass(2, 2))
}

// TestSameClass_Transitive verifies that chaining SameClass calls merges
// classes transitively: once a~b and b~c have both been recorded, a~c
// reports true without ever being asked directly before.
func TestSameClass_Transitive(t *testing.T) {
	t.Parallel()

	tbl := eqclass.New[int]()

	assert.False(t, tbl.SameClass(1, 2))
	assert.False(t, tbl.SameClass(2, 3))
	assert.True(t, tbl.SameClass(1, 3), "1 and 3 are transitively in the same class via 2")
	assert.True(t, tbl.SameClass(3, 1), "symmetric")
}

// TestSameClass_DistinctClassesStaySeparate verifies that two classes
// built independently remain distinguishable until explicitly unioned.
func TestSameClass_DistinctClassesStaySeparate(t *testing.T) {
	t.Parallel()

	tbl := eqclass.New[int]()

	tbl.SameClass(1, 2)
	tbl.SameClass(3, 4)

	assert.False(t, tbl.SameClass(1, 3), "distinct classes merge here, but were separate until now")
	assert.True(t, tbl.SameClass(2, 4), "now unioned transitively")
}

// TestSameClass_LongChainOfJoins joins a long chain of identities pairwise
// (each new identity to the previous one) and verifies that every member
// sampled along the chain reports the same class as the first.
func TestSameClass_LongChainOfJoins(t *testing.T) {
	t.Parallel()

	tbl := eqclass.New[int]()

	const n = 2000
	for i := 0; i < n-1; i++ {
		assert.False(t, tbl.SameClass(i, i+1))
	}

	for i := 0; i < n; i += 37 {
		assert.True(t, tbl.SameClass(0, i), "index %d should be in the same class as 0", i)
	}
}

// TestWithInitialCapacity verifies the option is accepted without
// affecting externally observable behavior.
func TestWithInitialCapacity(t *testing.T) {
	t.Parallel()

	tbl := eqclass.New[string](eqclass.WithInitialCapacity(4))
	assert.False(t, tbl.SameClass("x", "y"))
	assert.True(t, tbl.SameClass("x", "y"))
}
