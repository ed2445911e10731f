package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ams_backend/internals/constants"
)

// SessionModel is one document in the sessions collection. A recurring
// session acts as a template; its occurrences are separate documents
// pointing back via ParentSessionID.
type SessionModel struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"id" json:"id"`
	AcademyID string             `bson:"academyId" json:"academyId"`

	Name    string `bson:"name" json:"name"`
	Type    string `bson:"type,omitempty" json:"type,omitempty"` // training | match
	CoachID string `bson:"coachId,omitempty" json:"coachId,omitempty"`

	AssignedPlayers []string `bson:"assignedPlayers,omitempty" json:"assignedPlayers"`

	// Start/End bound the occurrence on the wall clock; Status is derived
	// from them on read unless pinned by StatusOverride.
	Start          time.Time `bson:"start" json:"start"`
	End            time.Time `bson:"end" json:"end"`
	Status         string    `bson:"status" json:"status"`
	StatusOverride bool      `bson:"statusOverride,omitempty" json:"-"`

	// Recurrence (template documents only)
	IsRecurring     bool   `bson:"isRecurring,omitempty" json:"isRecurring,omitempty"`
	RecurrenceDays  int    `bson:"recurrenceDays,omitempty" json:"recurrenceDays,omitempty"` // interval between occurrences
	RecurrenceCount int    `bson:"recurrenceCount,omitempty" json:"recurrenceCount,omitempty"`
	ParentSessionID string `bson:"parentSessionId,omitempty" json:"parentSessionId,omitempty"`

	// Attendance and PlayerMetrics are maps keyed by player id so a single
	// player's update is one atomic $set on a dotted path.
	Attendance    map[string]AttendanceRecord   `bson:"attendance,omitempty" json:"attendance"`
	PlayerMetrics map[string]map[string]float64 `bson:"playerMetrics,omitempty" json:"playerMetrics"`

	IsDeleted bool       `bson:"isDeleted,omitempty" json:"-"`
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"-"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

type AttendanceRecord struct {
	Status   string    `bson:"status" json:"status"` // Present | Absent
	MarkedAt time.Time `bson:"markedAt" json:"markedAt"`
	MarkedBy string    `bson:"markedBy,omitempty" json:"markedBy,omitempty"`
}

// ComputeStatus derives the lifecycle state from the session bounds.
// Overridden statuses are left alone.
func (s *SessionModel) ComputeStatus(now time.Time) string {
	if s.StatusOverride {
		return s.Status
	}
	switch {
	case now.Before(s.Start):
		return constants.SessionUpcoming
	case now.Before(s.End):
		return constants.SessionOngoing
	default:
		return constants.SessionFinished
	}
}

// ExpandOccurrences materializes child documents for a recurring template:
// one per occurrence, spaced RecurrenceDays apart, carrying the template's
// roster but fresh attendance/metrics. The template itself stays as is.
func (s *SessionModel) ExpandOccurrences(newID func() string) []SessionModel {
	if !s.IsRecurring || s.RecurrenceCount <= 0 {
		return nil
	}
	interval := s.RecurrenceDays
	if interval <= 0 {
		interval = 7 // weekly by default
	}

	out := make([]SessionModel, 0, s.RecurrenceCount)
	for i := 0; i < s.RecurrenceCount; i++ {
		shift := time.Duration(i*interval) * 24 * time.Hour
		occ := SessionModel{
			ID:              newID(),
			AcademyID:       s.AcademyID,
			Name:            s.Name,
			Type:            s.Type,
			CoachID:         s.CoachID,
			AssignedPlayers: append([]string(nil), s.AssignedPlayers...),
			Start:           s.Start.Add(shift),
			End:             s.End.Add(shift),
			ParentSessionID: s.ID,
		}
		occ.Status = occ.ComputeStatus(time.Now())
		out = append(out, occ)
	}
	return out
}

// EnsureDefaults fills nil maps/slices so JSON renders {} / [] not null.
func (s *SessionModel) EnsureDefaults() *SessionModel {
	if s.AssignedPlayers == nil {
		s.AssignedPlayers = []string{}
	}
	if s.Attendance == nil {
		s.Attendance = map[string]AttendanceRecord{}
	}
	if s.PlayerMetrics == nil {
		s.PlayerMetrics = map[string]map[string]float64{}
	}
	return s
}
