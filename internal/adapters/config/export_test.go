package config

// SetHome overrides the home directory lookup.
func (l *Loader) SetHome(home func() (string, error)) {
	l.home = home
}
