package repository

import (
	"context"

	"examprep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogRepository reads the exam catalog: courses, their subjects, and
// topics with embedded subtopics.
type CatalogRepository struct {
	Courses  *mongo.Collection
	Subjects *mongo.Collection
	Topics   *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		Courses:  db.Collection("courses"),
		Subjects: db.Collection("subjects"),
		Topics:   db.Collection("topics"),
	}
}

func (r *CatalogRepository) FindCourses(ctx context.Context) ([]models.Course, error) {
	cur, err := r.Courses.Find(ctx,
		bson.M{"isHidden": bson.M{"$ne": true}},
		options.Find().SetProjection(bson.M{"_id": 1, "name": 1, "slug": 1, "category": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CatalogRepository) FindSubjectsByCourse(ctx context.Context, courseID string) ([]models.Subject, error) {
	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, err
	}
	cur, err := r.Subjects.Find(ctx,
		bson.M{"courseId": oid, "isArchived": bson.M{"$ne": true}},
		options.Find().SetProjection(bson.M{"_id": 1, "name": 1, "questionsCount": 1, "courseId": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subjects []models.Subject
	if err := cur.All(ctx, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// FindTopicsWithSubtopics returns a subject's parent topics, each with its
// unarchived subtopics embedded, sorted by priority.
func (r *CatalogRepository) FindTopicsWithSubtopics(ctx context.Context, subjectID string) ([]models.Topic, error) {
	oid, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"subjectId":              oid,
			"parentTopicId":          nil,
			"isArchived":             bson.M{"$ne": true},
			"availableQuestionTypes": bson.M{"$exists": true, "$ne": bson.A{}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "topics",
			"localField":   "_id",
			"foreignField": "parentTopicId",
			"as":           "subtopics",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"subtopics": bson.M{
				"$filter": bson.M{
					"input": "$subtopics",
					"as":    "st",
					"cond":  bson.M{"$ne": bson.A{"$$st.isArchived", true}},
				},
			},
		}}},
		{{Key: "$sort", Value: bson.M{"priority": 1}}},
	}

	cur, err := r.Topics.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var topics []models.Topic
	if err := cur.All(ctx, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}
