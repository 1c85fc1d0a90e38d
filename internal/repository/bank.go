package repository

// Static question bank for the in-memory store, keyed by subject name.
// Entries mirror the flat sampling-API shape; every entry is a four-mark
// single-choice question.
type bankEntry struct {
	ID            string
	Question      string
	Options       []string
	CorrectAnswer int
	Difficulty    string
}

var questionBank = map[string][]bankEntry{
	"physics": {
		{
			ID:            "physics_1",
			Question:      "A particle is moving in a circular path with constant speed. What is the nature of its acceleration?",
			Options:       []string{"Zero", "Constant in magnitude but changing in direction", "Constant in direction but changing in magnitude", "Changing in both magnitude and direction"},
			CorrectAnswer: 1,
			Difficulty:    "medium",
		},
		{
			ID:            "physics_2",
			Question:      "The dimensional formula for impulse is:",
			Options:       []string{"[MLT⁻¹]", "[MLT⁻²]", "[ML²T⁻¹]", "[ML²T⁻²]"},
			CorrectAnswer: 0,
			Difficulty:    "easy",
		},
		{
			ID:            "physics_3",
			Question:      "A body of mass 5 kg is acted upon by a net force of 20 N. What will be its acceleration?",
			Options:       []string{"2 m/s²", "4 m/s²", "6 m/s²", "10 m/s²"},
			CorrectAnswer: 1,
			Difficulty:    "easy",
		},
		{
			ID:            "physics_4",
			Question:      "The work done by a force is zero when the angle between force and displacement is:",
			Options:       []string{"0°", "45°", "60°", "90°"},
			CorrectAnswer: 3,
			Difficulty:    "easy",
		},
		{
			ID:            "physics_5",
			Question:      "The escape velocity from Earth's surface is approximately:",
			Options:       []string{"7.9 km/s", "11.2 km/s", "15.0 km/s", "20.5 km/s"},
			CorrectAnswer: 1,
			Difficulty:    "medium",
		},
		{
			ID:            "physics_6",
			Question:      "In Simple Harmonic Motion, the acceleration is:",
			Options:       []string{"Constant", "Proportional to displacement", "Proportional to velocity", "Independent of displacement"},
			CorrectAnswer: 1,
			Difficulty:    "medium",
		},
	},
	"chemistry": {
		{
			ID:            "chemistry_1",
			Question:      "The atomic number of an element represents:",
			Options:       []string{"Number of protons", "Number of neutrons", "Number of electrons in outer shell", "Atomic mass"},
			CorrectAnswer: 0,
			Difficulty:    "easy",
		},
		{
			ID:            "chemistry_2",
			Question:      "The pH of pure water at 25°C is:",
			Options:       []string{"6", "7", "8", "14"},
			CorrectAnswer: 1,
			Difficulty:    "easy",
		},
		{
			ID:            "chemistry_3",
			Question:      "Which of the following is a noble gas?",
			Options:       []string{"Nitrogen", "Oxygen", "Argon", "Chlorine"},
			CorrectAnswer: 2,
			Difficulty:    "easy",
		},
		{
			ID:            "chemistry_4",
			Question:      "The molecular formula of glucose is:",
			Options:       []string{"C₆H₁₂O₆", "C₁₂H₂₂O₁₁", "C₆H₁₀O₅", "C₅H₁₀O₅"},
			CorrectAnswer: 0,
			Difficulty:    "medium",
		},
		{
			ID:            "chemistry_5",
			Question:      "Which element has the highest electronegativity?",
			Options:       []string{"Oxygen", "Fluorine", "Nitrogen", "Chlorine"},
			CorrectAnswer: 1,
			Difficulty:    "medium",
		},
	},
	"mathematics": {
		{
			ID:            "mathematics_1",
			Question:      "What is the approximate value of π (pi)?",
			Options:       []string{"3.14", "2.71", "1.41", "1.73"},
			CorrectAnswer: 0,
			Difficulty:    "easy",
		},
		{
			ID:            "mathematics_2",
			Question:      "The derivative of sin(x) with respect to x is:",
			Options:       []string{"cos(x)", "-cos(x)", "sin(x)", "-sin(x)"},
			CorrectAnswer: 0,
			Difficulty:    "easy",
		},
		{
			ID:            "mathematics_3",
			Question:      "The equation a² + b² = c² represents:",
			Options:       []string{"Pythagorean theorem", "Binomial theorem", "Quadratic equation", "Linear equation"},
			CorrectAnswer: 0,
			Difficulty:    "easy",
		},
		{
			ID:            "mathematics_4",
			Question:      "The integral of x with respect to x is:",
			Options:       []string{"x²/2 + C", "x² + C", "2x + C", "x/2 + C"},
			CorrectAnswer: 0,
			Difficulty:    "medium",
		},
		{
			ID:            "mathematics_5",
			Question:      "The value of log₁₀(100) is:",
			Options:       []string{"1", "2", "3", "10"},
			CorrectAnswer: 1,
			Difficulty:    "easy",
		},
	},
}
