package models

import "strconv"

// QuestionType is the numeric type tag stored on every question document.
type QuestionType int

const (
	SingleChoice QuestionType = iota
	MultiChoice
	Numeric
	FillBlanks
	AssertionReason
	TrueFalse
	Subjective
)

var questionTypeLabels = map[QuestionType]string{
	SingleChoice:    "Single Choice MCQ",
	MultiChoice:     "Multiple Choice MCQ",
	Numeric:         "Numerical Answer",
	FillBlanks:      "Fill in the Blanks",
	AssertionReason: "Assertion-Reason",
	TrueFalse:       "True/False",
	Subjective:      "Subjective",
}

func (t QuestionType) Label() string {
	if label, ok := questionTypeLabels[t]; ok {
		return label
	}
	return "Unknown"
}

func (t QuestionType) Valid() bool {
	return t >= SingleChoice && t <= Subjective
}

// IsChoice reports whether submitted answers are option value tokens.
func (t QuestionType) IsChoice() bool {
	return t == SingleChoice || t == MultiChoice
}

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyLabels = map[Difficulty]string{
	Easy:   "Easy",
	Medium: "Medium",
	Hard:   "Hard",
}

func (d Difficulty) Label() string {
	if label, ok := difficultyLabels[d]; ok {
		return label
	}
	return "Unknown"
}

func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// LatexFragment is one piece of math markup referenced from body text via
// an indexed placeholder.
type LatexFragment struct {
	ID    string `bson:"_id,omitempty" json:"_id,omitempty"`
	Latex string `bson:"latex" json:"latex"`
}

// RichContent is display text plus the ordered math fragments its
// placeholders refer to.
type RichContent struct {
	Text    string          `bson:"text" json:"text"`
	Latexes []LatexFragment `bson:"latexes,omitempty" json:"latexes,omitempty"`
}

// Option is one selectable choice: a value token and its display content.
type Option struct {
	V int         `bson:"v" json:"v"`
	D RichContent `bson:"d" json:"d"`
}

type QuestionBody struct {
	Body    RichContent `bson:"body" json:"body"`
	Options []Option    `bson:"options,omitempty" json:"options,omitempty"`
}

type QuestionMeta struct {
	Difficulty Difficulty `bson:"difficulty" json:"difficulty"`
	Marks      int        `bson:"marks,omitempty" json:"marks,omitempty"`
}

type QuestionTag struct {
	CourseID   string `bson:"course_id,omitempty" json:"course_id,omitempty"`
	SubjectID  string `bson:"subject_id,omitempty" json:"subject_id,omitempty"`
	TopicID    string `bson:"topic_id,omitempty" json:"topic_id,omitempty"`
	SubtopicID string `bson:"subtopic_id,omitempty" json:"subtopic_id,omitempty"`
}

type Question struct {
	ID           string        `bson:"_id,omitempty" json:"_id"`
	Type         QuestionType  `bson:"type" json:"type"`
	Question     QuestionBody  `bson:"question" json:"question"`
	Answer       AnswerKey     `bson:"answer" json:"answer"`
	Meta         QuestionMeta  `bson:"meta,omitempty" json:"meta,omitempty"`
	Tags         []QuestionTag `bson:"tags,omitempty" json:"tags,omitempty"`
	TopicName    string        `bson:"topicName,omitempty" json:"topicName,omitempty"`
	SubtopicName string        `bson:"subtopicName,omitempty" json:"subtopicName,omitempty"`
}

// OptionText returns the display text for a value token, falling back to a
// positional label when the option is missing or empty.
func (q *Question) OptionText(token int) string {
	for _, opt := range q.Question.Options {
		if opt.V == token {
			if opt.D.Text != "" {
				return opt.D.Text
			}
			break
		}
	}
	return "Option " + strconv.Itoa(token)
}

// NormalizedQuestion is the flattened shape served by the sampling API.
// CorrectAnswer is an option index, nil when the key cannot be resolved.
type NormalizedQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Marks         int      `json:"marks"`
	Type          string   `json:"type"`
}
