package repository

import (
	"context"
	"log"
	"time"

	"examprep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoQuestionStore samples questions from the questions collection and
// resolves topic names from the topics collection.
type MongoQuestionStore struct {
	Questions *mongo.Collection
	Topics    *mongo.Collection

	// SubjectIDs scopes sampling-API subjects to subject ObjectIds.
	SubjectIDs map[string]string
	// Strategy is "random" ($sample) or "newest" (sort by createdAt).
	Strategy     string
	QueryTimeout time.Duration
}

func NewMongoQuestionStore(db *mongo.Database, subjectIDs map[string]string, strategy string, timeout time.Duration) *MongoQuestionStore {
	return &MongoQuestionStore{
		Questions:    db.Collection("questions"),
		Topics:       db.Collection("topics"),
		SubjectIDs:   subjectIDs,
		Strategy:     strategy,
		QueryTimeout: timeout,
	}
}

// questionDoc mirrors the stored document with a loosely typed answer
// field; stored keys are number arrays for choice types but may be single
// numbers or strings for the rest.
type questionDoc struct {
	ID       primitive.ObjectID  `bson:"_id"`
	Type     models.QuestionType `bson:"type"`
	Question models.QuestionBody `bson:"question"`
	Answer   struct {
		Answer      interface{}         `bson:"answer"`
		Explanation *models.RichContent `bson:"explanation"`
	} `bson:"answer"`
	Meta models.QuestionMeta `bson:"meta"`
	Tags []struct {
		CourseID   primitive.ObjectID `bson:"course_id"`
		SubjectID  primitive.ObjectID `bson:"subject_id"`
		TopicID    primitive.ObjectID `bson:"topic_id"`
		SubtopicID primitive.ObjectID `bson:"subtopic_id"`
	} `bson:"tags"`
}

func (d *questionDoc) toModel() models.Question {
	q := models.Question{
		ID:       d.ID.Hex(),
		Type:     d.Type,
		Question: d.Question,
		Answer: models.AnswerKey{
			Tokens:      answerTokens(d.Answer.Answer),
			Explanation: d.Answer.Explanation,
		},
		Meta: d.Meta,
	}
	for _, tag := range d.Tags {
		t := models.QuestionTag{}
		if !tag.CourseID.IsZero() {
			t.CourseID = tag.CourseID.Hex()
		}
		if !tag.SubjectID.IsZero() {
			t.SubjectID = tag.SubjectID.Hex()
		}
		if !tag.TopicID.IsZero() {
			t.TopicID = tag.TopicID.Hex()
		}
		if !tag.SubtopicID.IsZero() {
			t.SubtopicID = tag.SubtopicID.Hex()
		}
		q.Tags = append(q.Tags, t)
	}
	return q
}

// answerTokens coerces a stored answer value into option value tokens.
// Non-numeric shapes (free-text keys for unscored types) yield nil.
func answerTokens(v interface{}) []int {
	switch value := v.(type) {
	case primitive.A:
		return sliceTokens(value)
	case []interface{}:
		return sliceTokens(value)
	default:
		if n, ok := asInt(v); ok {
			return []int{n}
		}
		return nil
	}
}

func sliceTokens(items []interface{}) []int {
	var tokens []int
	for _, item := range items {
		if n, ok := asInt(item); ok {
			tokens = append(tokens, n)
		}
	}
	return tokens
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

var batchProjection = bson.M{
	"_id":                              1,
	"type":                             1,
	"question.body.text":               1,
	"question.body.latexes.latex":      1,
	"question.body.latexes._id":        1,
	"question.options.d.text":          1,
	"question.options.d.latexes.latex": 1,
	"question.options.d.latexes._id":   1,
	"question.options.v":               1,
	"answer.answer":                    1,
	"answer.explanation.text":          1,
	"answer.explanation.latexes.latex": 1,
	"answer.explanation.latexes._id":   1,
	"meta.difficulty":                  1,
	"tags":                             1,
}

func (s *MongoQuestionStore) FetchBatch(ctx context.Context, f BatchFilters) ([]models.Question, error) {
	match, err := buildBatchMatch(f)
	if err != nil {
		return nil, err
	}

	// Over-fetch so text-level duplicates can be dropped.
	fetchLimit := f.Limit * 3

	var pipeline mongo.Pipeline
	if s.Strategy == "newest" {
		pipeline = mongo.Pipeline{
			{{Key: "$match", Value: match}},
			{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
			{{Key: "$limit", Value: fetchLimit}},
			{{Key: "$project", Value: batchProjection}},
		}
	} else {
		pipeline = mongo.Pipeline{
			{{Key: "$match", Value: match}},
			{{Key: "$sample", Value: bson.M{"size": fetchLimit}}},
			{{Key: "$project", Value: batchProjection}},
		}
	}

	opts := options.Aggregate().SetAllowDiskUse(true).SetMaxTime(s.QueryTimeout)
	cur, err := s.Questions.Aggregate(ctx, pipeline, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	seen := make(map[string]bool)
	var questions []models.Question
	for cur.Next(ctx) {
		var doc questionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		text := doc.Question.Body.Text
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		questions = append(questions, doc.toModel())
		if len(questions) >= f.Limit {
			break
		}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	s.resolveTopicNames(ctx, questions)
	return questions, nil
}

func buildBatchMatch(f BatchFilters) (bson.M, error) {
	match := bson.M{
		"isPublic":        true,
		"type":            f.Type,
		"meta.difficulty": f.Difficulty,
	}

	courseID, err := primitive.ObjectIDFromHex(f.CourseID)
	if err != nil {
		return nil, err
	}
	tagMatch := bson.M{"course_id": courseID}

	if f.SubjectID != "" {
		subjectID, err := primitive.ObjectIDFromHex(f.SubjectID)
		if err != nil {
			return nil, err
		}
		tagMatch["subject_id"] = subjectID
	}

	topicIDs, err := hexList(f.TopicIDs)
	if err != nil {
		return nil, err
	}
	subtopicIDs, err := hexList(f.SubtopicIDs)
	if err != nil {
		return nil, err
	}

	switch {
	case len(topicIDs) > 0 && len(subtopicIDs) > 0:
		tagMatch["$or"] = bson.A{
			bson.M{"topic_id": bson.M{"$in": topicIDs}},
			bson.M{"subtopic_id": bson.M{"$in": subtopicIDs}},
		}
	case len(topicIDs) > 0:
		tagMatch["topic_id"] = bson.M{"$in": topicIDs}
	case len(subtopicIDs) > 0:
		tagMatch["subtopic_id"] = bson.M{"$in": subtopicIDs}
	}

	match["tags"] = bson.M{"$elemMatch": tagMatch}
	return match, nil
}

func hexList(ids []string) ([]primitive.ObjectID, error) {
	var out []primitive.ObjectID
	for _, id := range ids {
		if id == "" {
			continue
		}
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

// resolveTopicNames attaches topic and subtopic names from the first tag so
// the session summary can group results. Lookup failures degrade to the
// "Unknown" sentinel rather than failing the batch.
func (s *MongoQuestionStore) resolveTopicNames(ctx context.Context, questions []models.Question) {
	for i := range questions {
		q := &questions[i]
		if len(q.Tags) == 0 {
			continue
		}
		tag := q.Tags[0]
		if tag.TopicID != "" {
			q.TopicName = s.topicName(ctx, tag.TopicID)
		}
		if tag.SubtopicID != "" {
			q.SubtopicName = s.topicName(ctx, tag.SubtopicID)
		}
	}
}

func (s *MongoQuestionStore) topicName(ctx context.Context, id string) string {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "Unknown"
	}
	var topic struct {
		Name string `bson:"name"`
	}
	err = s.Topics.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"name": 1})).Decode(&topic)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("topic name lookup failed for %s: %v", id, err)
		}
		return "Unknown"
	}
	return topic.Name
}

func (s *MongoQuestionStore) SampleBySubject(ctx context.Context, subject string, count int, difficulty string) ([]models.NormalizedQuestion, error) {
	match := bson.M{
		"isPublic": true,
		"$or": bson.A{
			bson.M{"deletedAt": nil},
			bson.M{"deletedAt": bson.M{"$exists": false}},
		},
	}

	if hex := s.SubjectIDs[subject]; hex != "" {
		subjectID, err := primitive.ObjectIDFromHex(hex)
		if err == nil {
			match["tags.subject_id"] = subjectID
		} else {
			log.Printf("invalid subject id for %q: %v", subject, err)
		}
	}
	if difficulty != "" {
		match["meta.difficulty"] = difficulty
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sample", Value: bson.M{"size": count}}},
	}

	cur, err := s.Questions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	normalized := make([]models.NormalizedQuestion, 0, count)
	for cur.Next(ctx) {
		var doc questionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		normalized = append(normalized, normalizeDoc(&doc))
	}
	return normalized, cur.Err()
}

// normalizeDoc flattens a stored document into the sampling-API shape:
// option display texts and the correct option's index, nil when the key
// cannot be resolved.
func normalizeDoc(doc *questionDoc) models.NormalizedQuestion {
	n := models.NormalizedQuestion{
		ID:       doc.ID.Hex(),
		Question: doc.Question.Body.Text,
		Options:  make([]string, 0, len(doc.Question.Options)),
		Marks:    doc.Meta.Marks,
		Type:     "single",
	}
	if n.Marks == 0 {
		n.Marks = 4
	}
	for _, opt := range doc.Question.Options {
		n.Options = append(n.Options, opt.D.Text)
	}
	if tokens := answerTokens(doc.Answer.Answer); len(tokens) > 0 {
		for i, opt := range doc.Question.Options {
			if opt.V == tokens[0] {
				index := i
				n.CorrectAnswer = &index
				break
			}
		}
	}
	return n
}
