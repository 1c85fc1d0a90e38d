package flow

import (
	"context"
	"errors"
	"testing"
	"time"

	"examprep-service/internal/models"
	"examprep-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	questions []models.Question
	err       error
	filters   repository.BatchFilters
}

func (s *stubFetcher) FetchBatch(_ context.Context, f repository.BatchFilters) ([]models.Question, error) {
	s.filters = f
	return s.questions, s.err
}

func singleChoiceQuestion(id, body string, correct int) models.Question {
	return models.Question{
		ID:   id,
		Type: models.SingleChoice,
		Question: models.QuestionBody{
			Body: models.RichContent{Text: body},
			Options: []models.Option{
				{V: 0, D: models.RichContent{Text: "A"}},
				{V: 1, D: models.RichContent{Text: "B"}},
				{V: 2, D: models.RichContent{Text: "C"}},
			},
		},
		Answer:    models.AnswerKey{Tokens: []int{correct}},
		TopicName: "Kinematics",
	}
}

func startedController(t *testing.T, questions []models.Question) *Controller {
	t.Helper()
	c := NewController(&stubFetcher{questions: questions})
	c.SelectCourse("course-1")
	c.SelectSubject("subject-1")
	state, err := c.StartSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateSession, state)
	return c
}

func TestGuardsRedirectToEarliestUnsatisfiedState(t *testing.T) {
	c := NewController(&stubFetcher{})

	assert.Equal(t, StateSelectExam, c.SelectSubject("subject-1"))
	assert.Equal(t, StateSelectExam, c.Goto(StateSelectTopics))

	c.SelectCourse("course-1")
	assert.Equal(t, StateSelectSubject, c.Goto(StateSelectTopics))

	c.SelectSubject("subject-1")
	assert.Equal(t, StateSelectTopics, c.Goto(StateSelectTopics))
}

func TestGotoNeverJumpsIntoSession(t *testing.T) {
	c := NewController(&stubFetcher{})
	c.SelectCourse("course-1")
	c.SelectSubject("subject-1")

	assert.Equal(t, StateSelectTopics, c.Goto(StateSession))
	assert.Equal(t, StateSelectTopics, c.Goto(StateResults))
}

func TestBackPreservesSelections(t *testing.T) {
	c := NewController(&stubFetcher{})
	c.SelectCourse("course-1")
	c.SelectSubject("subject-1")
	c.SetFilters([]string{"t1", "t2"}, []string{"st1"}, models.MultiChoice, models.Hard, 15)

	assert.Equal(t, StateSelectSubject, c.Back())
	assert.Equal(t, StateSelectExam, c.Back())

	sel := c.Selection()
	assert.Equal(t, "course-1", sel.CourseID)
	assert.Equal(t, "subject-1", sel.SubjectID)
	assert.Equal(t, []string{"t1", "t2"}, sel.TopicIDs)
	assert.Equal(t, []string{"st1"}, sel.SubtopicIDs)
	assert.Equal(t, models.MultiChoice, sel.Type)
	assert.Equal(t, models.Hard, sel.Difficulty)
}

func TestStartSessionPassesAccumulatedFilters(t *testing.T) {
	fetcher := &stubFetcher{questions: []models.Question{singleChoiceQuestion("q1", "Q?", 0)}}
	c := NewController(fetcher)
	c.SelectCourse("course-1")
	c.SelectSubject("subject-1")
	c.SetFilters([]string{"t1"}, nil, models.SingleChoice, models.Medium, 20)

	state, err := c.StartSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateSession, state)
	assert.Equal(t, "course-1", fetcher.filters.CourseID)
	assert.Equal(t, "subject-1", fetcher.filters.SubjectID)
	assert.Equal(t, []string{"t1"}, fetcher.filters.TopicIDs)
	assert.Equal(t, models.Medium, fetcher.filters.Difficulty)
	assert.Equal(t, 20, fetcher.filters.Limit)
}

func TestStartSessionFetchErrorKeepsState(t *testing.T) {
	c := NewController(&stubFetcher{err: errors.New("mongo down")})
	c.SelectCourse("course-1")
	c.SelectSubject("subject-1")
	c.Goto(StateSelectTopics)

	_, err := c.StartSession(context.Background())

	require.Error(t, err)
	assert.Equal(t, StateSelectTopics, c.State())
}

func TestEmptyFetchIsADeadEndWithBack(t *testing.T) {
	c := startedController(t, nil)

	assert.True(t, c.Empty())
	_, ok := c.Current()
	assert.False(t, ok)
	assert.False(t, c.CanSubmit())
	_, submitted := c.Submit()
	assert.False(t, submitted)

	assert.Equal(t, StateSelectTopics, c.Back())
}

func TestAnswerNavigationAndExplanationReset(t *testing.T) {
	c := startedController(t, []models.Question{
		singleChoiceQuestion("q1", "First?", 0),
		singleChoiceQuestion("q2", "Second?", 1),
	})

	q, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)

	c.ShowExplanation()
	assert.True(t, c.ExplanationShown())

	c.Answer(models.SingleAnswer(0))
	assert.False(t, c.ExplanationShown(), "changing the answer hides the explanation")

	c.ShowExplanation()
	c.Next()
	assert.False(t, c.ExplanationShown(), "navigation hides the explanation")

	q, _ = c.Current()
	assert.Equal(t, "q2", q.ID)

	c.Next()
	q, _ = c.Current()
	assert.Equal(t, "q2", q.ID, "cursor clamps at the last question")

	c.Prev()
	c.Prev()
	q, _ = c.Current()
	assert.Equal(t, "q1", q.ID, "cursor clamps at the first question")
}

func TestShowExplanationAutoAdvances(t *testing.T) {
	c := startedController(t, []models.Question{
		singleChoiceQuestion("q1", "First?", 0),
		singleChoiceQuestion("q2", "Second?", 1),
	})
	defer c.Close()
	c.SetAdvanceDelay(10 * time.Millisecond)

	c.ShowExplanation()

	require.Eventually(t, func() bool {
		q, ok := c.Current()
		return ok && q.ID == "q2"
	}, time.Second, 5*time.Millisecond)
	assert.False(t, c.ExplanationShown())
}

func TestAnswerCancelsPendingAutoAdvance(t *testing.T) {
	c := startedController(t, []models.Question{
		singleChoiceQuestion("q1", "First?", 0),
		singleChoiceQuestion("q2", "Second?", 1),
	})
	defer c.Close()
	c.SetAdvanceDelay(20 * time.Millisecond)

	c.ShowExplanation()
	c.Answer(models.SingleAnswer(1))

	time.Sleep(60 * time.Millisecond)
	q, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)
}

func TestNoAutoAdvanceOnLastQuestion(t *testing.T) {
	c := startedController(t, []models.Question{singleChoiceQuestion("q1", "Only?", 0)})
	defer c.Close()
	c.SetAdvanceDelay(10 * time.Millisecond)

	c.ShowExplanation()

	time.Sleep(40 * time.Millisecond)
	assert.True(t, c.ExplanationShown())
	q, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)
}

func TestSubmitBuildsSummaryAndEntersResults(t *testing.T) {
	c := startedController(t, []models.Question{
		singleChoiceQuestion("q1", "First?", 0),
		singleChoiceQuestion("q2", "Second?", 1),
		singleChoiceQuestion("q3", "Third?", 2),
	})

	assert.False(t, c.CanSubmit())

	c.Answer(models.SingleAnswer(0))
	c.Next()
	c.Answer(models.SingleAnswer(2))
	assert.True(t, c.CanSubmit())

	sum, ok := c.Submit()

	require.True(t, ok)
	assert.Equal(t, StateResults, c.State())
	assert.Equal(t, 3, sum.TotalQuestions)
	assert.Equal(t, 1, sum.CorrectAnswers)
	assert.Equal(t, 1, sum.WrongAnswers)
	assert.Equal(t, 1, sum.SkippedQuestions)

	questions, answers, carried := c.Results()
	assert.Len(t, questions, 3)
	assert.Len(t, answers, 2)
	assert.Equal(t, sum, carried)
}
