package schedule

// Gate is the shared-secret toggle guarding schedule mutations. It is a
// convenience confirmation for the duty table editor, not an access-control
// mechanism: the secret is one plaintext value compared for equality, and a
// successful unlock is one-way for the life of the gate. Re-locking is the
// caller's concern (the API lets the unlock flag expire).
type Gate struct {
	secret   string
	unlocked bool
}

func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Unlock transitions the gate to unlocked when secret matches and reports
// whether it did. A mismatch leaves the current state untouched.
func (g *Gate) Unlock(secret string) bool {
	if secret != g.secret {
		return false
	}
	g.unlocked = true
	return true
}

func (g *Gate) Unlocked() bool {
	return g.unlocked
}
