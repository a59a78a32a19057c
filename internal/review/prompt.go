package review

import (
	"fmt"
	"strings"

	"lintora.co/server/internal/model"
)

// analysisPrompts holds the per-category expert framing merged into the
// system prompt for the categories a request selects.
var analysisPrompts = map[model.AnalysisType]string{
	model.AnalysisSecurity: `You are a security expert. Analyze the code for:
- SQL injection, XSS, CSRF vulnerabilities
- Authentication and authorization issues
- Exposed secrets or credentials
- Insecure cryptography
- Input validation issues
- File handling vulnerabilities
Provide specific line numbers and security recommendations.`,

	model.AnalysisQuality: `You are a code quality expert. Analyze the code for:
- Code smells and anti-patterns
- Readability and maintainability
- Naming conventions
- Code duplication
- Complexity issues
- Adherence to SOLID principles
Provide specific improvements with examples.`,

	model.AnalysisPerformance: `You are a performance optimization expert. Analyze the code for:
- Algorithmic complexity issues (O(n²) or worse)
- Memory leaks
- Inefficient loops or iterations
- Unnecessary computations
- Database query optimization
- Resource management
Suggest optimizations with performance impact estimates.`,

	model.AnalysisArchitecture: `You are a software architecture expert. Analyze the code for:
- Design patterns usage
- Separation of concerns
- Dependency management
- Coupling and cohesion
- Scalability considerations
- Modularity and reusability
Provide architectural recommendations.`,

	model.AnalysisTesting: `You are a testing expert. Analyze the code for:
- Missing unit tests
- Edge cases not covered
- Test coverage gaps
- Critical paths without tests
- Integration test requirements
Suggest specific test cases to add.`,

	model.AnalysisDocumentation: `You are a documentation expert. Analyze the code for:
- Missing or inadequate comments
- Unclear function/class descriptions
- Missing API documentation
- Complex logic without explanation
- Outdated comments
Suggest documentation improvements.`,
}

const reviewerGroundRules = `You are an expert code reviewer.

IMPORTANT:
1. Read the code CAREFULLY and check what already EXISTS before claiming something is missing
2. Report only REAL problems, do not invent any
3. If the code is correct, SAY it is correct instead of inventing problems
4. Keep explanations short and plain`

// NumberLines prefixes every line of code with its 1-based index in the
// "{n}| " form the prompts and the parser agree on, so the model can
// reference absolute line numbers unambiguously.
func NumberLines(code string) string {
	lines := strings.Split(code, "\n")
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d| %s", i+1, line)
	}
	return b.String()
}

// BuildPrompts assembles the system and user prompts for a full review.
// Pure construction; empty code is the caller's error to reject.
func BuildPrompts(req Request) (systemPrompt, userPrompt string) {
	var sys strings.Builder
	sys.WriteString(reviewerGroundRules)
	for _, t := range req.Types() {
		sys.WriteString("\n\n")
		sys.WriteString(analysisPrompts[t])
	}
	if len(req.Guidelines) > 0 {
		sys.WriteString("\n\nProject guidelines to enforce:\n")
		for _, g := range req.Guidelines {
			sys.WriteString("- " + g + "\n")
		}
	}

	user := fmt.Sprintf(`Carefully analyze the %s code below (max 3 REAL problems):

Code with line numbers (USE THESE EXACT NUMBERS):
`+"```%s\n%s\n```"+`

CHECK THE CODE and report only REAL problems, one per section:
## [short problem title]
Line: [the EXACT number from the left margin, e.g. 5]
Severity: critical/high/medium/low
Problem: [what is WRONG - 1 sentence]
Fix: [how to fix it - 1 sentence]

IMPORTANT: use the line numbers from the left margin (1|, 2|, 3|, ...)!`,
		req.Language, req.Language, NumberLines(req.Code))

	return sys.String(), user
}

const incrementalSystemPrompt = `You are an expert code reviewer specializing in incremental code reviews.
Focus only on the changes made, not the entire codebase.
Analyze for:
- Security issues introduced by changes
- Breaking changes
- Performance regressions
- Code quality issues in new/modified code
- Missing tests for new functionality`

// BuildIncrementalPrompts assembles prompts for a diff-scoped review.
func BuildIncrementalPrompts(req IncrementalRequest, diff string) (systemPrompt, userPrompt string) {
	language := req.Language
	if language == "" {
		language = "code"
	}
	filename := req.Filename
	if filename == "" {
		filename = "unknown"
	}

	user := fmt.Sprintf(`Review these code changes in %s:

File: %s

Changes:
`+"```diff\n%s\n```"+`

Modified code:
`+"```%s\n%s\n```"+`

Focus ONLY on the changed lines and their impact.
Provide specific findings with line numbers, severity, and recommendations.`,
		language, filename, diff, req.Language, req.ModifiedCode)

	return incrementalSystemPrompt, user
}

const fixSystemPrompt = "You are a code fixing expert. Provide only corrected code."

// BuildFixPrompt asks for a corrected snippet for one finding.
func BuildFixPrompt(code string, finding model.Finding, language string) (systemPrompt, userPrompt string) {
	if language == "" {
		language = "code"
	}
	user := fmt.Sprintf(`Given this code issue:
**%s**
%s

In this %s:
`+"```\n%s\n```"+`

Provide ONLY the fixed code snippet without explanation.`,
		finding.Title, finding.Description, language, code)

	return fixSystemPrompt, user
}

const completeFixSystemPrompt = `You are an expert programmer. Fix ALL the listed problems and return the COMPLETE corrected code.

IMPORTANT:
- Return ONLY THE CODE, no explanations
- Preserve formatting and indentation
- Fix ALL the listed problems
- Do not add extra comments`

// BuildCompleteFixPrompt asks for the whole file corrected at once.
func BuildCompleteFixPrompt(code, language string, findings []model.Finding) (systemPrompt, userPrompt string) {
	var issues strings.Builder
	for i, f := range findings {
		line := "?"
		if f.LineStart > 0 {
			line = fmt.Sprintf("%d", f.LineStart)
		}
		desc := f.Description
		if desc == "" {
			desc = f.Title
		}
		fmt.Fprintf(&issues, "%d. Line %s: %s\n", i+1, line, desc)
	}

	user := fmt.Sprintf(`Fix the following problems in this %s code:

%s
Original code:
`+"```%s\n%s\n```"+`

Return the COMPLETE and CORRECT code (code only, no markdown):`,
		language, issues.String(), language, code)

	return completeFixSystemPrompt, user
}

// StripCodeFences removes a wrapping markdown code fence, if the model
// added one despite instructions.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
