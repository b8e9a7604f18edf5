package theme

// Palette is a fully resolved token→color map. Unlike a Resolver chain it is
// total by construction and cheap to serialize for API responses.
type Palette map[Token]Color

// ResolveAll materializes a total Palette from a resolver chain. The chain
// must end in Fallback; tokens the chain cannot resolve are filled from
// Fallback directly so the result always covers AllTokens.
func ResolveAll(r Resolver) Palette {
	p := make(Palette, len(AllTokens))
	for _, t := range AllTokens {
		c, ok := r.Resolve(t)
		if !ok {
			c, _ = Fallback.Resolve(t)
		}
		p[t] = c
	}
	return p
}

// Resolve implements Resolver.
func (p Palette) Resolve(t Token) (Color, bool) {
	c, ok := p[t]
	return c, ok
}

// Hex renders the palette as a plain token→hex map.
func (p Palette) Hex() map[string]string {
	m := make(map[string]string, len(p))
	for t, c := range p {
		m[string(t)] = c.Hex()
	}
	return m
}
