package flow

import (
	"context"
	"sync"
	"time"

	"examprep-service/internal/models"
	"examprep-service/internal/repository"
	"examprep-service/internal/summary"
)

// State enumerates the linear practice flow. Transitions only ever move one
// step forward or backward; guards redirect instead of erroring.
type State int

const (
	StateSelectExam State = iota
	StateSelectSubject
	StateSelectTopics
	StateSession
	StateResults
)

func (s State) String() string {
	switch s {
	case StateSelectExam:
		return "select-exam"
	case StateSelectSubject:
		return "select-subject"
	case StateSelectTopics:
		return "select-topics"
	case StateSession:
		return "session"
	case StateResults:
		return "results"
	}
	return "unknown"
}

// Selection is the accumulated filter state carried across transitions.
// Backward navigation keeps it intact so re-entering a step shows the
// previous choices.
type Selection struct {
	CourseID    string
	SubjectID   string
	TopicIDs    []string
	SubtopicIDs []string
	Type        models.QuestionType
	Difficulty  models.Difficulty
	Limit       int
}

func (s Selection) filters() repository.BatchFilters {
	return repository.BatchFilters{
		CourseID:    s.CourseID,
		SubjectID:   s.SubjectID,
		TopicIDs:    s.TopicIDs,
		SubtopicIDs: s.SubtopicIDs,
		Difficulty:  s.Difficulty,
		Type:        s.Type,
		Limit:       s.Limit,
	}
}

// QuestionFetcher loads the session's question set. *service.QuestionService
// satisfies it.
type QuestionFetcher interface {
	FetchBatch(ctx context.Context, f repository.BatchFilters) ([]models.Question, error)
}

const defaultAdvanceDelay = 3 * time.Second

// Controller drives one practice run through the five states. Safe for
// concurrent use; the auto-advance timer fires on its own goroutine.
type Controller struct {
	mu      sync.Mutex
	fetcher QuestionFetcher
	delay   time.Duration

	state     State
	selection Selection

	questions        []models.Question
	current          int
	answers          models.AnswerMap
	explanationShown bool
	advanceTimer     *time.Timer

	summary models.SessionSummary
}

func NewController(fetcher QuestionFetcher) *Controller {
	return &Controller{
		fetcher: fetcher,
		delay:   defaultAdvanceDelay,
		answers: models.AnswerMap{},
	}
}

// SetAdvanceDelay overrides the explanation auto-advance delay.
func (c *Controller) SetAdvanceDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delay = d
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// SelectCourse records the exam choice and moves to subject selection.
func (c *Controller) SelectCourse(courseID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if courseID != "" {
		c.selection.CourseID = courseID
	}
	return c.gotoLocked(StateSelectSubject)
}

// SelectSubject records the subject choice and moves to topic selection.
// Without a course the guard sends the flow back to exam selection.
func (c *Controller) SelectSubject(subjectID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection.CourseID == "" {
		c.state = StateSelectExam
		return c.state
	}
	if subjectID != "" {
		c.selection.SubjectID = subjectID
	}
	return c.gotoLocked(StateSelectTopics)
}

// SetFilters records the topic/subtopic sets and the type and difficulty
// filters chosen on the topics page.
func (c *Controller) SetFilters(topicIDs, subtopicIDs []string, qt models.QuestionType, d models.Difficulty, limit int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.TopicIDs = topicIDs
	c.selection.SubtopicIDs = subtopicIDs
	c.selection.Type = qt
	c.selection.Difficulty = d
	c.selection.Limit = limit
}

// Goto navigates to target, redirecting to the earliest state whose
// prerequisites are unmet. Entering Session or Results this way is not
// allowed; use StartSession and Submit.
func (c *Controller) Goto(target State) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if target >= StateSession {
		target = StateSelectTopics
	}
	return c.gotoLocked(target)
}

func (c *Controller) gotoLocked(target State) State {
	if target >= StateSelectSubject && c.selection.CourseID == "" {
		target = StateSelectExam
	}
	if target >= StateSelectTopics && c.selection.SubjectID == "" {
		target = StateSelectSubject
	}
	c.cancelAdvanceLocked()
	c.state = target
	return c.state
}

// StartSession fetches the question set for the accumulated filters and
// enters the session. An empty result still enters the session as a dead
// end: no current question, submission disabled, Back available.
func (c *Controller) StartSession(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.selection.CourseID == "" || c.selection.SubjectID == "" {
		state := c.gotoLocked(StateSelectTopics)
		c.mu.Unlock()
		return state, nil
	}
	filters := c.selection.filters()
	c.mu.Unlock()

	questions, err := c.fetcher.FetchBatch(ctx, filters)
	if err != nil {
		return c.State(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.questions = questions
	c.current = 0
	c.answers = models.AnswerMap{}
	c.explanationShown = false
	c.state = StateSession
	return c.state, nil
}

// Back steps to the previous state. Selections survive so the earlier page
// can restore its choices.
func (c *Controller) Back() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateSelectSubject:
		return c.gotoLocked(StateSelectExam)
	case StateSelectTopics:
		return c.gotoLocked(StateSelectSubject)
	case StateSession, StateResults:
		return c.gotoLocked(StateSelectTopics)
	}
	return c.state
}

// Empty reports whether the session entered with no questions.
func (c *Controller) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateSession && len(c.questions) == 0
}

// Current returns the question under the cursor.
func (c *Controller) Current() (models.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSession || c.current >= len(c.questions) {
		return models.Question{}, false
	}
	return c.questions[c.current], true
}

func (c *Controller) ExplanationShown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.explanationShown
}

// Answer records the submitted value for the current question. Changing an
// answer hides the explanation and cancels a pending auto-advance.
func (c *Controller) Answer(v models.AnswerValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSession || c.current >= len(c.questions) {
		return
	}
	c.answers[c.questions[c.current].ID] = v
	c.explanationShown = false
	c.cancelAdvanceLocked()
}

// Next moves the cursor forward, clamped to the last question.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moveLocked(c.current + 1)
}

// Prev moves the cursor backward, clamped to the first question.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moveLocked(c.current - 1)
}

func (c *Controller) moveLocked(idx int) {
	if c.state != StateSession || len(c.questions) == 0 {
		return
	}
	if idx < 0 || idx >= len(c.questions) {
		return
	}
	c.current = idx
	c.explanationShown = false
	c.cancelAdvanceLocked()
}

// ShowExplanation reveals the explanation and schedules the auto-advance,
// unless the cursor is already on the last question.
func (c *Controller) ShowExplanation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSession || c.current >= len(c.questions) {
		return
	}
	c.explanationShown = true
	c.cancelAdvanceLocked()
	if c.current == len(c.questions)-1 {
		return
	}
	from := c.current
	c.advanceTimer = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.state != StateSession || c.current != from || !c.explanationShown {
			return
		}
		c.current++
		c.explanationShown = false
		c.advanceTimer = nil
	})
}

func (c *Controller) cancelAdvanceLocked() {
	if c.advanceTimer != nil {
		c.advanceTimer.Stop()
		c.advanceTimer = nil
	}
}

// CanSubmit reports whether at least one question has been answered.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateSession && len(c.answers) > 0
}

// Submit builds the session summary and enters Results. A no-op unless
// submission is allowed.
func (c *Controller) Submit() (models.SessionSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSession || len(c.answers) == 0 {
		return models.SessionSummary{}, false
	}
	c.cancelAdvanceLocked()
	c.summary = summary.Build(c.questions, c.answers)
	c.state = StateResults
	return c.summary, true
}

// Results returns the data carried into the results state.
func (c *Controller) Results() ([]models.Question, models.AnswerMap, models.SessionSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.questions, c.answers, c.summary
}

// Close cancels any pending timer, for when the session view goes away.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelAdvanceLocked()
}
