package order

type Status string

const (
	StatusOrdering       Status = "ordering"
	StatusPaymentStarted Status = "payment_started"
	StatusPartiallyPaid  Status = "partially_paid"
	StatusPaid           Status = "paid"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOrdering, StatusPaymentStarted, StatusPartiallyPaid, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsClosed reports whether the order accepts no further claims.
func (s Status) IsClosed() bool {
	return s == StatusPaid || s == StatusCancelled
}
