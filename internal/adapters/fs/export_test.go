package fs

// SetHome overrides the home directory lookup used for "~" patterns.
// This is exported for testing purposes only.
func (r *Resolver) SetHome(home func() (string, error)) {
	r.home = home
}
