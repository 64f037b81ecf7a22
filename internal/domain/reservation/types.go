package reservation

type Status string

// Only confirmed reservations block a vehicle; canceled rows are kept for history.
const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}
