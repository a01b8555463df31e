package theme

// Sink receives token writes. It is owned by the caller, which is also
// responsible for serializing access to it.
type Sink interface {
	Set(token Token, value string)
}

// Setter adapts a plain function to Sink.
type Setter func(token Token, value string)

// Set calls f(token, value).
func (f Setter) Set(token Token, value string) { f(token, value) }

// Context is an in-memory style context. The zero value is an empty
// context ready to use.
type Context struct {
	values map[Token]string
	writes int
}

// NewContext returns an empty style context.
func NewContext() *Context {
	return &Context{values: make(map[Token]string)}
}

// Set stores value under token.
func (c *Context) Set(token Token, value string) {
	if c.values == nil {
		c.values = make(map[Token]string)
	}
	c.values[token] = value
	c.writes++
}

// Get returns the value stored under token, or "" when unset.
func (c *Context) Get(token Token) string {
	return c.values[token]
}

// Values returns a copy of the stored tokens.
func (c *Context) Values() map[Token]string {
	out := make(map[Token]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Writes returns the number of Set calls made so far.
func (c *Context) Writes() int {
	return c.writes
}
