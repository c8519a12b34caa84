package boolmin

// SelectCover reduces implicants in place to a subset that still covers
// every minterm in m, using a greedy frequency heuristic: each minterm's
// covering implicants are counted globally, then minterms are visited in
// order and, when not already covered by a previously selected implicant,
// the most-frequent remaining coverer is selected. After each minterm,
// whether or not it was already covered, the frequency of every implicant
// covering it is decremented. This is a documented heuristic, not an exact
// minimum cover.
func SelectCover(implicants []Implicant, m Minterms) []Implicant {
	factors := make([][]int, len(m.Indices))
	frequency := make([]int, len(implicants))

	for i, minterm := range m.Indices {
		for j, imp := range implicants {
			if imp.Covers(minterm) {
				factors[i] = append(factors[i], j)
				frequency[j]++
			}
		}
	}

	selected := make([]bool, len(implicants))
	for i := range m.Indices {
		covered := false
		for _, j := range factors[i] {
			if selected[j] {
				covered = true
				break
			}
		}

		if !covered && len(factors[i]) > 0 {
			best := factors[i][0]
			for _, j := range factors[i][1:] {
				if frequency[j] > frequency[best] {
					best = j
				}
			}
			selected[best] = true
		}

		for _, j := range factors[i] {
			frequency[j]--
		}
	}

	result := implicants[:0]
	for i, imp := range implicants {
		if selected[i] {
			result = append(result, imp)
		}
	}
	return result
}

// ExpressionFromImplicant builds the product term for imp: variables are
// scanned by increasing list index, and each bit position where Mask is set
// emits the variable (when Value's bit is 1) or its negation (when 0),
// chained by left-associative And. An all-zero mask yields Const(true).
func ExpressionFromImplicant(imp Implicant, variables []byte) Expression {
	k := len(variables)

	literal := func(i int) (Expression, bool) {
		bit := uint(k - i - 1)
		if (imp.Mask>>bit)&1 == 0 {
			return Expression{}, false
		}
		e := Var(variables[i])
		if (imp.Value>>bit)&1 == 0 {
			e = Op(Not, e)
		}
		return e, true
	}

	var result Expression
	have := false
	for i := range variables {
		lit, ok := literal(i)
		if !ok {
			continue
		}
		if !have {
			result = lit
			have = true
			continue
		}
		result = Op(And, result, lit)
	}

	if !have {
		return Const(true)
	}
	return result
}

// ExpressionFromImplicants combines the product terms of every implicant in
// implicants with left-associative Or. An empty set yields Const(false).
func ExpressionFromImplicants(implicants []Implicant, variables []byte) Expression {
	if len(implicants) == 0 {
		return Const(false)
	}

	result := ExpressionFromImplicant(implicants[0], variables)
	for _, imp := range implicants[1:] {
		result = Op(Or, result, ExpressionFromImplicant(imp, variables))
	}
	return result
}
