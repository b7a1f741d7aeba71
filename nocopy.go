package rc

// noCopy lets go vet's copylocks check report handles that are copied by
// plain assignment instead of Clone or Move.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
