package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment links a user (by email) to a course. CourseID is a weak
// reference; nothing stops the course from being deleted afterwards.
type Enrollment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CourseID   primitive.ObjectID `bson:"courseId" json:"courseId"`
	UserEmail  string             `bson:"userEmail" json:"userEmail"`
	UserName   string             `bson:"userName,omitempty" json:"userName,omitempty"`
	EnrolledAt time.Time          `bson:"enrolledAt" json:"enrolledAt"`
}
