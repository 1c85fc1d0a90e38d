package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Course struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Slug     string             `bson:"slug,omitempty" json:"slug,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
}

type Subject struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	QuestionsCount int                `bson:"questionsCount,omitempty" json:"questionsCount,omitempty"`
	CourseID       primitive.ObjectID `bson:"courseId,omitempty" json:"courseId,omitempty"`
}

type Topic struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	QuestionsCount int                `bson:"questionsCount,omitempty" json:"questionsCount,omitempty"`
	Priority       int                `bson:"priority,omitempty" json:"priority,omitempty"`
	SubjectID      primitive.ObjectID `bson:"subjectId,omitempty" json:"subjectId,omitempty"`
	ParentTopicID  primitive.ObjectID `bson:"parentTopicId,omitempty" json:"parentTopicId,omitempty"`
	Subtopics      []Topic            `bson:"subtopics,omitempty" json:"subtopics,omitempty"`
}
