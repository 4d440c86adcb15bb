package chat

// Directory is the in-memory mapping of announced chat names to their
// connections. It is process-lifetime only: nothing here survives a
// restart. All mutation happens on the hub's event loop, which is what
// serializes access; the directory itself takes no locks.
type Directory struct {
	byName map[string]*Client
	names  []string // announce order, kept stable for display
}

func NewDirectory() *Directory {
	return &Directory{byName: make(map[string]*Client)}
}

// Announce binds a name to a connection. The first announcement wins: a
// second announce under a live name is ignored rather than overwritten,
// so a late duplicate cannot hijack the name. Returns whether the entry
// was inserted.
func (d *Directory) Announce(name string, c *Client) bool {
	if _, taken := d.byName[name]; taken {
		return false
	}
	d.byName[name] = c
	d.names = append(d.names, name)
	return true
}

// Lookup resolves a name to its connection.
func (d *Directory) Lookup(name string) (*Client, bool) {
	c, ok := d.byName[name]
	return c, ok
}

// Remove deletes the entry bound to the given connection, if any.
// Returns whether an entry was removed.
func (d *Directory) Remove(c *Client) bool {
	for name, bound := range d.byName {
		if bound == c {
			delete(d.byName, name)
			for i, n := range d.names {
				if n == name {
					d.names = append(d.names[:i], d.names[i+1:]...)
					break
				}
			}
			return true
		}
	}
	return false
}

// Names returns the announced names in announce order.
func (d *Directory) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Announced returns every bound connection.
func (d *Directory) Announced() []*Client {
	out := make([]*Client, 0, len(d.names))
	for _, name := range d.names {
		out = append(out, d.byName[name])
	}
	return out
}
