package domain

// AdminDirectory maps admin usernames to their secrets. It is injected
// at construction from configuration and never persisted or mutated at
// runtime. Admins have no lockout semantics.
type AdminDirectory map[string]string

// Authenticate checks a username/password pair by exact equality.
func (d AdminDirectory) Authenticate(username, password string) bool {
	secret, ok := d[username]
	return ok && secret == password
}

// Recognized reports whether username is a known admin. Administrative
// operations trust a previously established admin session and do not
// re-check the password.
func (d AdminDirectory) Recognized(username string) bool {
	_, ok := d[username]
	return ok
}
