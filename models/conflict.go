package models

// Conflict entry types: what kind of existing commitment collided.
const (
	ConflictTypeSession = "SESSION"
	ConflictTypeBooking = "BOOKING"
)

// ConflictEntry describes one colliding commitment with enough detail to
// render a human message: whose time, which window, and who holds it.
type ConflictEntry struct {
	Type        string     `json:"type"` // SESSION or BOOKING
	Window      TimeWindow `json:"window"`
	ClassID     string     `json:"classId,omitempty"`
	ClassName   string     `json:"className,omitempty"`
	RoomID      string     `json:"roomId,omitempty"`
	RoomName    string     `json:"roomName,omitempty"`
	TrainerID   string     `json:"trainerId,omitempty"`
	TrainerName string     `json:"trainerName,omitempty"`
	// Booked is true when a BOOKING entry is held by a client rather than
	// merely blocked on the trainer's calendar.
	Booked     bool   `json:"booked,omitempty"`
	BookedBy   string `json:"bookedBy,omitempty"`
	OtherParty string `json:"otherParty,omitempty"`
}

// ConflictReport is the shared scanner output. It is a value, never an
// error: HasConflict==true is a normal, expected result the caller turns
// into a user-facing rejection (or, on admin override paths, a warning).
type ConflictReport struct {
	HasConflict bool                       `json:"hasConflict"`
	Count       int                        `json:"count"`
	Entries     []ConflictEntry            `json:"entries,omitempty"`
	PerTrainer  map[string][]ConflictEntry `json:"perTrainer,omitempty"`
}

// Add appends an entry and keeps the aggregate fields consistent.
func (r *ConflictReport) Add(e ConflictEntry) {
	r.Entries = append(r.Entries, e)
	r.Count = len(r.Entries)
	r.HasConflict = true
}

// AddForTrainer appends an entry under a trainer as well as to the flat list.
func (r *ConflictReport) AddForTrainer(trainerID string, e ConflictEntry) {
	if r.PerTrainer == nil {
		r.PerTrainer = make(map[string][]ConflictEntry)
	}
	r.PerTrainer[trainerID] = append(r.PerTrainer[trainerID], e)
	r.Add(e)
}
