package agents

import (
	"fmt"
	"strings"
)

const codeReviewPrompt = `
You are a senior code reviewer. Analyze the following {language} code for:
1. Code quality and readability
2. Best practices adherence
3. Potential bugs or issues
4. Architecture and design patterns
5. Performance considerations

Code to review:
{code_block}

Context: {context}

Provide specific, actionable feedback in a professional tone.
`

const documentationPrompt = `
You are a technical documentation specialist. Generate comprehensive documentation for this {language} code:

Code:
{code_block}

Context: {context}

Create documentation that includes:
1. Function/class descriptions
2. Parameter explanations
3. Return value descriptions
4. Usage examples
5. Important notes or warnings

Format the documentation in a clear, professional manner.
`

const testGenerationPrompt = `
You are a test automation expert. Generate comprehensive test cases for this {language} code:

Code:
{code_block}

Context: {context}
Requirements: {requirements}

Create test cases that cover:
1. Happy path scenarios
2. Edge cases and boundary conditions
3. Error handling and exception cases
4. Integration test scenarios
5. Performance test considerations

Provide actual test code examples where possible.
`

const performancePrompt = `
You are a performance optimization expert. Analyze this {language} code for performance issues:

Code:
{code_block}

Context: {context}

Identify and analyze:
1. Time complexity issues
2. Memory usage patterns
3. I/O bottlenecks
4. Database query optimization opportunities
5. Caching strategies
6. Algorithmic improvements

Provide specific optimization recommendations with examples.
`

const securityPrompt = `
You are a cybersecurity expert. Perform a security analysis of this {language} code:

Code:
{code_block}

Context: {context}

Check for:
1. Input validation vulnerabilities
2. SQL injection risks
3. XSS vulnerabilities
4. Authentication and authorization issues
5. Data exposure risks
6. Cryptographic implementation issues
7. Dependency vulnerabilities

Provide specific security recommendations and mitigation strategies.
`

const llmJudgePrompt = `
You are an expert AI judge evaluating code quality. Provide an overall assessment of this {language} code:

Code:
{code_block}

Context: {context}

Provide a comprehensive evaluation covering:
1. Overall code quality score (1-10)
2. Strengths and positive aspects
3. Critical issues that need immediate attention
4. Priority recommendations
5. Comparison to industry best practices

Give balanced, constructive feedback suitable for code review.
`

// returns a prompt builder filling the {language}, {code_block}, {context} and {requirements} slots
func promptFrom(tmpl string) func(Request) string {
	return func(req Request) string {
		r := strings.NewReplacer(
			"{language}", req.Language,
			"{code_block}", codeBlock(req.Language, req.Code),
			"{context}", req.Context,
			"{requirements}", requirementsLine(req.Requirements),
		)

		return r.Replace(tmpl)
	}
}

func codeBlock(language, code string) string {
	return "```" + language + "\n" + code + "\n```"
}

// renders requirements as a list literal: [] or ['a', 'b']
func requirementsLine(reqs []string) string {
	quoted := make([]string, len(reqs))
	for i, r := range reqs {
		quoted[i] = quoteItem(r)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}

// single quotes unless the item holds a single quote and no double quote
func quoteItem(item string) string {
	quote := '\''
	if strings.ContainsRune(item, '\'') && !strings.ContainsRune(item, '"') {
		quote = '"'
	}

	var b strings.Builder

	b.WriteRune(quote)

	for _, r := range item {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == quote:
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteRune(quote)

	return b.String()
}
