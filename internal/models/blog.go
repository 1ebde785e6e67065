package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is one document in the blogs collection. authorImage holds the
// uploaded author photo URL; media holds zero or more image/video URLs
// in upload order.
type Blog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorName     string             `bson:"authorName" json:"authorName"`
	Title          string             `bson:"title" json:"title"`
	Category       string             `bson:"category" json:"category"`
	SubCategory    string             `bson:"subCategory,omitempty" json:"subCategory,omitempty"`
	Summary        string             `bson:"summary" json:"summary"`
	Content        string             `bson:"content" json:"content"`
	TravelTags     []string           `bson:"travelTags" json:"travelTags"`
	PublishingDate time.Time          `bson:"publishingDate" json:"publishingDate"`
	AuthorImage    string             `bson:"authorImage" json:"authorImage"`
	Media          []string           `bson:"media" json:"media"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BlogInput carries the raw multipart text fields of a create/update
// request. Everything arrives as a string; travelTags and publishingDate
// are parsed downstream, after validation.
type BlogInput struct {
	AuthorName     string `validate:"required,min=3"`
	Title          string `validate:"required,min=5"`
	Category       string `validate:"required,min=3"`
	SubCategory    string
	Summary        string `validate:"required,min=10"`
	Content        string `validate:"required,min=20"`
	TravelTags     string
	PublishingDate string
}
