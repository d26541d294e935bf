package claim

type Status string

const (
	StatusReserved   Status = "reserved"
	StatusProcessing Status = "processing"
	StatusPaid       Status = "paid"
	StatusExpired    Status = "expired"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusProcessing, StatusPaid, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the claim still reserves part of the order total.
func (s Status) IsActive() bool {
	return s == StatusReserved || s == StatusProcessing
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusExpired || s == StatusCancelled
}

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

func (o Outcome) IsValid() bool {
	return o == OutcomeSucceeded || o == OutcomeFailed
}
