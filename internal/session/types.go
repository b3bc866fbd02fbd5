package session

// Status is the lifecycle state of the held credential.
type Status int

const (
	StatusAbsent Status = iota
	StatusLoading
	StatusVerifying
	StatusVerified
	StatusInvalid
	StatusUnreachable
)

var statusNames = map[Status]string{
	StatusAbsent:      "absent",
	StatusLoading:     "loading",
	StatusVerifying:   "verifying",
	StatusVerified:    "verified",
	StatusInvalid:     "invalid",
	StatusUnreachable: "unreachable",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Event is published to listeners after every status transition.
type Event struct {
	Status     Status
	Generation uint64 // credential generation the status belongs to
}

// Listener receives session events. It is invoked outside the manager's lock
// and may call back into the manager.
type Listener func(Event)

// SignInInput is the input for SignIn and Register.
type SignInInput struct {
	Username string
	Password string
}
