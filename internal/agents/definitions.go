package agents

var definitions = map[Type]Definition{
	TypeCodeReview: {
		Type:           TypeCodeReview,
		Role:           RoleCode,
		Confidence:     0.85,
		FailureMessage: "Code review analysis failed",
		prompt:         promptFrom(codeReviewPrompt),
		suggestions:    extractReviewSuggestions,
	},
	TypeDocumentation: {
		Type:           TypeDocumentation,
		Role:           RoleCode,
		Confidence:     0.88,
		FailureMessage: "Documentation generation failed",
		prompt:         promptFrom(documentationPrompt),
		suggestions: fixed(
			"Add inline comments for complex logic",
			"Include usage examples in docstrings",
			"Document error conditions and exceptions",
			"Consider adding type hints",
			"Review parameter descriptions for clarity",
		),
	},
	TypeTestGeneration: {
		Type:           TypeTestGeneration,
		Role:           RoleReasoning,
		Confidence:     0.92,
		FailureMessage: "Test generation failed",
		prompt:         promptFrom(testGenerationPrompt),
		suggestions: fixed(
			"Add unit tests for all public methods",
			"Include integration tests for external dependencies",
			"Test error handling and edge cases",
			"Add performance benchmarks",
			"Consider property-based testing for complex logic",
		),
	},
	TypePerformance: {
		Type:           TypePerformance,
		Role:           RoleReasoning,
		Confidence:     0.87,
		FailureMessage: "Performance analysis failed",
		prompt:         promptFrom(performancePrompt),
		suggestions: fixed(
			"Profile code execution to identify bottlenecks",
			"Consider algorithmic optimizations",
			"Implement caching for expensive operations",
			"Optimize database queries and indexes",
			"Use async/await for I/O bound operations",
		),
	},
	TypeSecurity: {
		Type:           TypeSecurity,
		Role:           RoleReasoning,
		Confidence:     0.90,
		FailureMessage: "Security analysis failed",
		prompt:         promptFrom(securityPrompt),
		suggestions: fixed(
			"Implement input validation and sanitization",
			"Use parameterized queries to prevent SQL injection",
			"Apply principle of least privilege",
			"Implement proper error handling to avoid information disclosure",
			"Use secure cryptographic libraries and practices",
		),
	},
	TypeLLMJudge: {
		Type:           TypeLLMJudge,
		Role:           RoleReasoning,
		Confidence:     0.89,
		FailureMessage: "LLM judge analysis failed",
		prompt:         promptFrom(llmJudgePrompt),
		suggestions: fixed(
			"Follow established coding standards",
			"Implement comprehensive error handling",
			"Add thorough documentation",
			"Include automated testing",
			"Consider code maintainability and readability",
		),
	},
}

// returns the definition of a known agent type
func Lookup(t Type) (Definition, bool) {
	def, ok := definitions[t]
	return def, ok
}

// true for the six agent labels
func (t Type) Valid() bool {
	_, ok := definitions[t]
	return ok
}

// renders the prompt for a request, defaults included
func (d Definition) Prompt(req Request) string {
	return d.prompt(req.withDefaults())
}

// shapes the suggestion list for an analysis
func (d Definition) Suggestions(analysis string) []string {
	return d.suggestions(analysis)
}

func (r Request) withDefaults() Request {
	if r.Language == "" {
		r.Language = DefaultLanguage
	}

	return r
}
