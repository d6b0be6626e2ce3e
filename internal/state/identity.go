package state

// Identity names the application. It is fixed at startup.
type Identity struct {
	name string
}

func NewIdentity(name string) Identity {
	return Identity{name: name}
}

func (i Identity) Name() string {
	return i.name
}
