package model

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlayerModel is one document in the players collection.
//
// Identifier convention: ID is the externally assigned string id used in
// URLs and foreign keys. The native _id never appears in responses; it is
// only accepted on lookups for historical documents keyed that way.
type PlayerModel struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"id" json:"id"`
	AcademyID string             `bson:"academyId" json:"academyId"`
	UserID    string             `bson:"userId,omitempty" json:"userId,omitempty"`

	Name     string `bson:"name" json:"name"`
	Position string `bson:"position,omitempty" json:"position,omitempty"`
	Age      int    `bson:"age,omitempty" json:"age,omitempty"`
	Photo    string `bson:"photo,omitempty" json:"photo,omitempty"`

	// Attributes is the current skill record (shooting, pace, passing, ...).
	// Replaced wholesale by the attributes endpoint.
	Attributes map[string]float64 `bson:"attributes,omitempty" json:"attributes"`

	// Stats are accumulated counters (goals, assists, ...) adjusted by
	// $inc from performance entries, never overwritten wholesale.
	Stats map[string]float64 `bson:"stats,omitempty" json:"stats"`

	// PerformanceHistory is append-only; entries are never removed or
	// rewritten once pushed.
	PerformanceHistory []PerformanceEntry `bson:"performanceHistory,omitempty" json:"performanceHistory"`

	IsDeleted bool       `bson:"isDeleted,omitempty" json:"-"`
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"-"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// PerformanceEntry is one dated performance record.
type PerformanceEntry struct {
	Date      time.Time          `bson:"date" json:"date"`
	Type      string             `bson:"type" json:"type"` // match | training
	SessionID string             `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Stats     map[string]float64 `bson:"stats,omitempty" json:"stats"`
	Rating    float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// RecentHistory returns up to n entries sorted by date descending.
// The stored order is insertion order; reads impose the sort.
func (p *PlayerModel) RecentHistory(n int) []PerformanceEntry {
	out := make([]PerformanceEntry, len(p.PerformanceHistory))
	copy(out, p.PerformanceHistory)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// EnsureDefaults fills nil sub-objects so responses render {} / [] instead
// of null. Handlers call this before returning a document.
func (p *PlayerModel) EnsureDefaults() *PlayerModel {
	if p.Attributes == nil {
		p.Attributes = map[string]float64{}
	}
	if p.Stats == nil {
		p.Stats = map[string]float64{}
	}
	if p.PerformanceHistory == nil {
		p.PerformanceHistory = []PerformanceEntry{}
	}
	return p
}
