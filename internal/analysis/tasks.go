package analysis

import "strings"

type Task string

const (
	TaskReview  Task = "review"
	TaskExplain Task = "explain"
	TaskTest    Task = "test"
	TaskSuggest Task = "suggest"
	TaskAnalyze Task = "analyze"
)

// request defaults
const (
	DefaultTask        = TaskAnalyze
	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.1
)

const codePlaceholder = "{code}"

var templates = map[Task]string{
	TaskReview:  "Review this code for bugs and improvements:\n\n{code}",
	TaskExplain: "Explain what this code does in simple terms:\n\n{code}",
	TaskTest:    "Write unit tests for this code:\n\n{code}",
	TaskSuggest: "Suggest optimizations for this code:\n\n{code}",
	TaskAnalyze: "Analyze this code:\n\n{code}",
}

// tasks answered by the code-specialised model
var codeTasks = map[Task]bool{
	TaskReview:  true,
	TaskTest:    true,
	TaskSuggest: true,
}

// tasks whose output is scanned for typed suggestions
var suggestionTasks = map[Task]bool{
	TaskReview:  true,
	TaskSuggest: true,
}

// true for the five labels with their own template
func (t Task) Known() bool {
	_, ok := templates[t]
	return ok
}

// interpolates code into the task template, unknown tasks use the analyze template
func FormatPrompt(task Task, code string) string {
	tmpl, ok := templates[task]
	if !ok {
		tmpl = templates[TaskAnalyze]
	}

	return strings.Replace(tmpl, codePlaceholder, code, 1)
}

// picks a model per task
type ModelSelector struct {
	CodeModel    string
	GeneralModel string
}

// review, test and suggest go to the code model, everything else to the general model
func (s ModelSelector) Select(task Task) string {
	if codeTasks[task] {
		return s.CodeModel
	}

	return s.GeneralModel
}
