package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Instructor is embedded in a Course. Email is the lookup key used by
// the by-instructor listing.
type Instructor struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email" json:"email"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

type Course struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"titleCI" json:"-"` // lowercase, diacritics-stripped

	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Category    string     `bson:"category" json:"category"`
	Instructor  Instructor `bson:"instructor" json:"instructor"`

	Image    string  `bson:"image,omitempty" json:"image,omitempty"`
	Price    float64 `bson:"price" json:"price"`
	Duration string  `bson:"duration,omitempty" json:"duration,omitempty"`
	Level    string  `bson:"level,omitempty" json:"level,omitempty"`

	IsFeatured bool `bson:"isFeatured" json:"isFeatured"`

	// Server-maintained. EnrolledStudents only changes through enrollment.
	EnrolledStudents int     `bson:"enrolledStudents" json:"enrolledStudents"`
	Rating           float64 `bson:"rating" json:"rating"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CoursePatch carries the client-editable fields of a course update.
// A nil field is left untouched in the stored document.
type CoursePatch struct {
	Title       *string
	Description *string
	Category    *string
	Instructor  *Instructor
	Image       *string
	Price       *float64
	Duration    *string
	Level       *string
	IsFeatured  *bool
}
