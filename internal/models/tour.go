package models

import "time"

// TeamMember is one guide on a tour. Photo is nil when no photo was
// uploaded for the member's position.
type TeamMember struct {
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Photo       *string `bson:"photo" json:"photo"`
	IsLeader    bool    `bson:"isLeader" json:"isLeader"`
}

// Tour is the persisted entity for a bookable guided tour. TourID is
// assigned by the store at creation time and never changes.
type Tour struct {
	TourID       int          `bson:"tourId" json:"tourId"`
	Title        string       `bson:"title" json:"title"`
	Description  string       `bson:"description" json:"description"`
	Language     string       `bson:"language" json:"language"`
	City         string       `bson:"city" json:"city"`
	Category     string       `bson:"category" json:"category"`
	TimeSlot     string       `bson:"timeSlot" json:"timeSlot"`
	MeetingPoint string       `bson:"meetingPoint" json:"meetingPoint"`
	Price        float64      `bson:"price" json:"price"`
	Date         time.Time    `bson:"date" json:"date"`
	Images       []string     `bson:"images" json:"images"`
	TeamMembers  []TeamMember `bson:"teamMembers" json:"teamMembers"`
}

// TourTitle is the projection returned by the title listing.
type TourTitle struct {
	Title string `bson:"title" json:"title"`
}
