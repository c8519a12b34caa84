package boolmin

// Minterms holds the minterm indices of an expression together with the
// ordered variables list the indices are encoded against. For a variables
// list of length k, bit (k-1-j) of each index holds the value assigned to
// the j-th variable in the list. Indices appear in strictly ascending
// order and are all < 2^k.
type Minterms struct {
	Variables []byte
	Indices   []uint64
}

// MintermsFromExpression enumerates the minterms of e: the variables list
// is computed, e is cloned and folded with no environment (so operations
// whose operands are already constants collapse, while variables remain),
// and every assignment of the 2^k possible valuations is evaluated against
// the folded tree.
func MintermsFromExpression(e Expression) Minterms {
	variables := Variables(e)
	k := len(variables)

	folded := e.Clone().Simplify()

	m := Minterms{Variables: variables}
	if folded.Kind == KindConstant {
		if folded.Const {
			m.Indices = make([]uint64, 1<<uint(k))
			for i := range m.Indices {
				m.Indices[i] = uint64(i)
			}
		}
		return m
	}

	total := uint64(1) << uint(k)
	for i := uint64(0); i < total; i++ {
		env := NewEnvironment()
		for j, name := range variables {
			bit := (i >> uint(k-j-1)) & 1
			env = env.Set(name, bit != 0)
		}
		if folded.Evaluate(env) {
			m.Indices = append(m.Indices, i)
		}
	}
	return m
}
