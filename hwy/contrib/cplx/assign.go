package cplx

// Compound assignment. Each method updates the receiver in place and returns
// it, so calls chain: z.MulAssign(w).AddAssign(u).

// AddAssign sets c to c + o.
func (c *Complex) AddAssign(o Complex) *Complex {
	*c = c.Add(o)
	return c
}

// SubAssign sets c to c - o.
func (c *Complex) SubAssign(o Complex) *Complex {
	*c = c.Sub(o)
	return c
}

// MulScalarAssign sets c to c·s.
func (c *Complex) MulScalarAssign(s float64) *Complex {
	*c = c.MulScalar(s)
	return c
}

// DivScalarAssign sets c to c/s.
func (c *Complex) DivScalarAssign(s float64) *Complex {
	*c = c.DivScalar(s)
	return c
}

// MulAssign sets c to c·o.
func (c *Complex) MulAssign(o Complex) *Complex {
	*c = c.Mul(o)
	return c
}

// DivAssign sets c to c/o.
func (c *Complex) DivAssign(o Complex) *Complex {
	*c = c.Div(o)
	return c
}
