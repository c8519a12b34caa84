package boolmin

import "math/bits"

// term pairs an implicant with whether it has been absorbed into a
// combination during the current pass.
type term struct {
	implicant Implicant
	combined  bool
}

// table is the Quine-McCluskey working structure: groups indexed by the
// popcount of the implicant's fixed one-bits.
type table struct {
	groups [][]term
}

func newTable(groupCount int) table {
	return table{groups: make([][]term, groupCount)}
}

// add inserts imp into its popcount group, skipping it if an equal
// implicant (same value and mask) is already present.
func (t *table) add(imp Implicant) {
	g := bits.OnesCount64(imp.Value & imp.Mask)
	group := t.groups[g]
	for _, existing := range group {
		if existing.implicant.Mask == imp.Mask && existing.implicant.Value == imp.Value {
			return
		}
	}
	t.groups[g] = append(group, term{implicant: imp})
}

func (t *table) clear() {
	for i := range t.groups {
		t.groups[i] = t.groups[i][:0]
	}
}

// PrimeImplicants synthesizes the prime implicants of m using the tabular
// Quine-McCluskey method: implicants are grouped by popcount, adjacent
// groups are combined pairwise wherever they differ in exactly one fixed
// bit, and any implicant that survives a pass without combining is prime.
// The process repeats until no pass produces a new combination.
func PrimeImplicants(m Minterms) []Implicant {
	k := len(m.Variables)
	fullMask := uint64(1)<<uint(k) - 1

	input := newTable(k + 1)
	for _, index := range m.Indices {
		input.add(Implicant{Value: index, Mask: fullMask})
	}
	output := newTable(k + 1)

	var primes []Implicant

	for {
		combinedAny := false

		for g := range input.groups {
			group := input.groups[g]
			for j := range group {
				if g != len(input.groups)-1 {
					next := input.groups[g+1]
					for l := range next {
						if combinable(group[j].implicant, next[l].implicant) {
							group[j].combined = true
							next[l].combined = true
							combinedAny = true
							output.add(combine(group[j].implicant, next[l].implicant))
						}
					}
				}

				if !group[j].combined {
					primes = append(primes, group[j].implicant)
				}
			}
		}

		input, output = output, input
		output.clear()

		if !combinedAny {
			break
		}
	}

	return primes
}
