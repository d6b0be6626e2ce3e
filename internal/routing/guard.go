package routing

import "net/http"

// Guard is a predicate over request metadata. Guards must not have side effects.
type Guard func(r *http.Request) bool

// Host matches when the request's Host equals host exactly. The comparison is
// case-sensitive and a port, if sent, is part of the value.
func Host(host string) Guard {
	return func(r *http.Request) bool {
		return r.Host == host
	}
}

// Header matches when the named header equals value. net/http moves the Host
// header out of r.Header, so Header("Host", v) behaves like Host(v).
func Header(name, value string) Guard {
	if http.CanonicalHeaderKey(name) == "Host" {
		return Host(value)
	}
	return func(r *http.Request) bool {
		return r.Header.Get(name) == value
	}
}

// Not inverts g.
func Not(g Guard) Guard {
	return func(r *http.Request) bool {
		return !g(r)
	}
}

// All matches when every guard matches. An empty All always matches.
func All(guards ...Guard) Guard {
	return func(r *http.Request) bool {
		return allMatch(guards, r)
	}
}

// Any matches when at least one guard matches. An empty Any never matches.
func Any(guards ...Guard) Guard {
	return func(r *http.Request) bool {
		for _, g := range guards {
			if g(r) {
				return true
			}
		}
		return false
	}
}

func allMatch(guards []Guard, r *http.Request) bool {
	for _, g := range guards {
		if !g(r) {
			return false
		}
	}
	return true
}
