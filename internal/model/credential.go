package model

// Credential is the opaque bearer token proving authentication.
type Credential string

func (c Credential) String() string { return string(c) }

// Empty reports whether no credential is held.
func (c Credential) Empty() bool { return c == "" }
