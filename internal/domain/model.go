// Package domain holds the persistent entities of the tournament backend.
package domain

import "time"

// Person is a registered player, identified externally by document number.
type Person struct {
	ID        int64  `json:"id"`
	Document  string `json:"document"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Tournament is a scheduled competition. Results always belong to exactly
// one tournament.
type Tournament struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Category classifies players (e.g. by skill or age group). Soft-deleted
// categories are invisible to imports.
type Category struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Modality is the game modality (individual, doubles, team event).
// Soft-deleted modalities are invisible to imports.
type Modality struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Branch is the competition branch (rama): masculine, feminine, mixed.
type Branch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Team groups players inside a club for team events.
type Team struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	ClubID int64  `json:"clubId"`
}

// ResultRecord is the durable unit written by an import: one score line
// bowled by one person in one round of one tournament.
//
// (PersonID, TournamentID, RoundNumber, LineNumber) is unique; the database
// index on that key is the authoritative duplicate guard.
type ResultRecord struct {
	ID           int64     `json:"id"`
	PersonID     int64     `json:"personId"`
	TournamentID int64     `json:"tournamentId"`
	CategoryID   int64     `json:"categoryId"`
	ModalityID   int64     `json:"modalityId"`
	BranchID     int64     `json:"branchId"`
	TeamID       *int64    `json:"teamId,omitempty"`
	RoundNumber  int       `json:"roundNumber"`
	LaneNumber   int       `json:"laneNumber"`
	LineNumber   int       `json:"lineNumber"`
	Score        int       `json:"score"`
	CreatedBy    int64     `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
