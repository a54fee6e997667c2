package appointment

import "github.com/BruksfildServices01/barber-console/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "Confirmado"
	StatusArrived   Status = "Chegou"
	StatusAttended  Status = "Atendido"
)

var rank = map[Status]int{
	StatusConfirmed: 0,
	StatusArrived:   1,
	StatusAttended:  2,
}

func (s Status) Valid() bool {
	_, ok := rank[s]
	return ok
}

// ===============================
// Validations
// ===============================

// InitialStatus is the status of every newly booked appointment.
func InitialStatus() Status {
	return StatusConfirmed
}

// CanTransition allows staying put or moving forward. Atendido is terminal.
func CanTransition(current, next Status) error {
	if !next.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if current == next {
		return nil
	}
	if current == StatusAttended || rank[next] < rank[current] {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}

// CanFinalize reports whether the finalization flow may be opened.
func CanFinalize(current Status) error {
	if current == StatusAttended {
		return httperr.ErrBusiness("appointment_already_attended")
	}
	return nil
}

// QueueOrder ranks statuses for the day queue: arrived clients first.
func QueueOrder(s Status) int {
	switch s {
	case StatusArrived:
		return 1
	case StatusConfirmed:
		return 2
	case StatusAttended:
		return 3
	}
	return 4
}
