package boolmin_test

import (
	"reflect"
	"testing"

	"github.com/jaqx0r/boolmin"
)

// minimize runs the full pipeline end to end: parse, enumerate minterms,
// find prime implicants, select a cover, and reconstruct an expression.
func minimize(input string) (boolmin.Expression, boolmin.Minterms, boolmin.Expression) {
	expr := boolmin.Parse(input)
	minterms := boolmin.MintermsFromExpression(expr)
	primes := boolmin.PrimeImplicants(minterms)
	cover := boolmin.SelectCover(primes, minterms)
	minimized := boolmin.ExpressionFromImplicants(cover, minterms.Variables)
	return expr, minterms, minimized
}

// equivalent reports whether a and b agree on every assignment of vars.
func equivalent(a, b boolmin.Expression, vars []byte) bool {
	k := len(vars)
	total := uint64(1) << uint(k)
	for i := uint64(0); i < total; i++ {
		env := boolmin.NewEnvironment()
		for j, name := range vars {
			bit := (i >> uint(k-j-1)) & 1
			env = env.Set(name, bit != 0)
		}
		if a.Evaluate(env) != b.Evaluate(env) {
			return false
		}
	}
	return true
}

func TestEndToEndScenarios(t *testing.T) {
	for _, tc := range []struct {
		name      string
		input     string
		wantVars  []byte
		wantIndex []uint64
		wantMin   string
	}{
		{
			name:      "tautology a + !a minimizes to 1",
			input:     "a + !a",
			wantVars:  []byte{'a'},
			wantIndex: []uint64{0, 1},
			wantMin:   "1",
		},
		{
			name:      "contradiction a & !a minimizes to 0",
			input:     "a & !a",
			wantVars:  []byte{'a'},
			wantIndex: nil,
			wantMin:   "0",
		},
		{
			name:      "consensus ab + a!b minimizes to a",
			input:     "a b + a !b",
			wantVars:  []byte{'a', 'b'},
			wantIndex: []uint64{2, 3},
			wantMin:   "a",
		},
		{
			name:      "factored form (a+b)(a+!b) minimizes to a",
			input:     "(a + b)(a + !b)",
			wantVars:  []byte{'a', 'b'},
			wantIndex: []uint64{2, 3},
			wantMin:   "a",
		},
		{
			name:      "a'b + ab' + ab minimizes to a + b",
			input:     "a'b + ab' + ab",
			wantVars:  []byte{'a', 'b'},
			wantIndex: []uint64{1, 2, 3},
		},
		{
			name:      "distinct case letters A and a minimizes to a + A",
			input:     "A + a",
			wantVars:  []byte{'a', 'A'},
			wantIndex: []uint64{1, 2, 3},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			original, minterms, minimized := minimize(tc.input)

			if !reflect.DeepEqual(minterms.Variables, tc.wantVars) {
				t.Errorf("Variables = %v, want %v", minterms.Variables, tc.wantVars)
			}
			if !reflect.DeepEqual(minterms.Indices, tc.wantIndex) {
				t.Errorf("Indices = %v, want %v", minterms.Indices, tc.wantIndex)
			}

			if tc.wantMin != "" {
				if got := minimized.String(); got != tc.wantMin {
					t.Errorf("minimized.String() = %q, want %q", got, tc.wantMin)
				}
			}

			if !equivalent(original, minimized, minterms.Variables) {
				t.Errorf("minimized expression %q is not equivalent to original %q over variables %v",
					minimized.String(), original.String(), minterms.Variables)
			}
		})
	}
}

// TestVariablesOrderingInvariant checks invariant 1: variables are always
// returned in canonical ascending order (a..z, then A..Z), never input order.
func TestVariablesOrderingInvariant(t *testing.T) {
	expr := boolmin.Parse("Z + a + M")
	vars := boolmin.Variables(expr)

	for i := 1; i < len(vars); i++ {
		if canonicalIndex(vars[i-1]) >= canonicalIndex(vars[i]) {
			t.Fatalf("Variables() not in ascending canonical order: %v", vars)
		}
	}
}

func canonicalIndex(c byte) int {
	if c >= 'a' && c <= 'z' {
		return int(c - 'a')
	}
	return 26 + int(c-'A')
}

// TestMintermCompletenessInvariant checks invariant 2: an assignment index
// appears in Minterms.Indices exactly when the expression is true under it.
// It also checks that every index is less than 2^len(Variables).
func TestMintermCompletenessInvariant(t *testing.T) {
	expr := boolmin.Parse("a b + c")
	m := boolmin.MintermsFromExpression(expr)
	limit := uint64(1) << uint(len(m.Variables))
	for _, idx := range m.Indices {
		if idx >= limit {
			t.Errorf("minterm index %d out of range for %d variables", idx, len(m.Variables))
		}
	}

	listed := map[uint64]bool{}
	for _, idx := range m.Indices {
		listed[idx] = true
	}
	k := len(m.Variables)
	for i := uint64(0); i < limit; i++ {
		env := boolmin.NewEnvironment()
		for j, name := range m.Variables {
			env = env.Set(name, (i>>uint(k-j-1))&1 != 0)
		}
		if got := expr.Evaluate(env); got != listed[i] {
			t.Errorf("assignment %d: Evaluate() = %v, but listed as minterm = %v", i, got, listed[i])
		}
	}
}

// TestCoverSoundnessInvariant checks invariant 4: the selected cover covers
// every minterm, for a case with more variables and don't-cares.
func TestCoverSoundnessInvariant(t *testing.T) {
	_, minterms, minimized := minimize("a b c + a !b c + !a b c")
	minimizedMinterms := boolmin.MintermsFromExpression(minimized)

	want := map[uint64]bool{}
	for _, idx := range minterms.Indices {
		want[idx] = true
	}
	got := map[uint64]bool{}
	for _, idx := range minimizedMinterms.Indices {
		got[idx] = true
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("minimized expression minterms = %v, want %v", got, want)
	}
}

// TestMinimizationIdempotence checks invariant 6: minimizing an already
// minimized expression again produces the same minterm set.
func TestMinimizationIdempotence(t *testing.T) {
	_, _, once := minimize("a b + a !b")
	twiceMinterms := boolmin.MintermsFromExpression(once)
	onceMinterms := boolmin.MintermsFromExpression(once)
	if !reflect.DeepEqual(onceMinterms.Indices, twiceMinterms.Indices) {
		t.Errorf("re-minterming a minimized expression changed its minterms")
	}

	expr := boolmin.Parse(once.String())
	minterms := boolmin.MintermsFromExpression(expr)
	primes := boolmin.PrimeImplicants(minterms)
	cover := boolmin.SelectCover(primes, minterms)
	twice := boolmin.ExpressionFromImplicants(cover, minterms.Variables)

	if !equivalent(once, twice, minterms.Variables) {
		t.Errorf("minimizing twice is not equivalent: once=%q twice=%q", once.String(), twice.String())
	}
}

// TestSimplificationSoundnessInvariant checks invariant 7: Simplify never
// changes an expression's truth table.
func TestSimplificationSoundnessInvariant(t *testing.T) {
	expr := boolmin.Parse("a & (b + !b) + !a & 0")
	vars := boolmin.Variables(expr)
	simplified := expr.Simplify()

	if !equivalent(expr, simplified, vars) {
		t.Errorf("Simplify() changed the truth table: %q -> %q", expr.String(), simplified.String())
	}
}

// TestRoundTripInvariant checks invariant 9: printing and reparsing an
// expression yields a structurally identical tree.
func TestRoundTripInvariant(t *testing.T) {
	for _, input := range []string{"a", "ab", "a + b", "(a + b)(c + !d)", "a'", "1 * b", "a + A"} {
		expr := boolmin.Parse(input)
		reparsed := boolmin.Parse(expr.String())
		if !expr.Equal(reparsed) {
			t.Errorf("round trip mismatch for %q: printed %q", input, expr.String())
		}
	}
}
