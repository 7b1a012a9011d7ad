package planner

import (
	"fmt"
	"strings"

	"github.com/tara-vision/taraplan/internal/scan"
)

// PlanHeading is the heading the generated plan is appended under in the
// task file.
const PlanHeading = "## LLM-Generated Plan:"

const (
	systemInit = "You are a software architect who generates memory-bank documentation in JSON. " +
		"Output MUST be valid JSON with a 'files' array. Each array item has 'filename' and 'content'."
	systemUpdate  = "You are a helpful assistant that maintains documentation for software projects."
	systemClarify = "You are a helpful assistant that identifies ambiguities in task descriptions."
	systemPlan    = `You are a senior developer and technical lead with expertise in software architecture and implementation planning.
Your plans are detailed, precise, and actionable, providing clear guidance that even junior developers can follow.`
)

// memoryBankSpec describes the memory bank's purpose and its six core
// files, with their dependency order, for the init prompt.
const memoryBankSpec = `# Memory Bank

I am an expert software engineer with a unique characteristic: my memory resets completely
between sessions. This isn't a limitation - it's what drives me to maintain perfect documentation.
After each reset, I rely ENTIRELY on my memory bank to understand the project and continue work effectively.
I MUST read ALL memory bank files at the start of EVERY task - this is not optional.

## memory bank structure

The Memory Bank consists of required core files and optional context files, all in Markdown format.
Files build upon each other in a clear hierarchy:

` + "```mermaid" + `
flowchart TD
    B[brief.md] --> PC[product-context.md]
    B --> SP[system-patterns.md]
    B --> TC[tech-context.md]

    PC --> AC[active-context.md]
    SP --> AC
    TC --> AC

    AC --> P[progress.md]
` + "```" + `

### core files (required)
1. ` + "`brief.md`" + `
   - Foundation document that shapes all other files
   - Created at project start if it doesn't exist
   - Defines core requirements and goals
   - Source of truth for project scope

2. ` + "`product-context.md`" + `
   - Why this project exists
   - Problems it solves
   - How it should work
   - User experience goals

3. ` + "`active-context.md`" + `
   - Current work focus
   - Recent changes
   - Next steps
   - Active decisions and considerations

4. ` + "`system-patterns.md`" + `
   - System architecture
   - Key technical decisions
   - Design patterns in use
   - Component relationships

5. ` + "`tech-context.md`" + `
   - Technologies used
   - Development setup
   - Technical constraints
   - Dependencies

6. ` + "`progress.md`" + `
   - What works
   - What's left to build
   - Current status
   - Known issues

### additional context
Create additional files within memory-bank/ when they help organize:
- Complex feature documentation
- Integration specifications
- API documentation
- Testing strategies
- Deployment procedures

Remember: after every memory reset, I begin completely fresh. The Memory Bank is my only link
to previous work. It must be maintained with precision and clarity, as my effectiveness
depends entirely on its accuracy.`

func initPrompt(projectInfo, codeAnalysis string) string {
	return fmt.Sprintf(`You are tasked with generating a set of markdown files for a project's memory bank.
Please respond with valid JSON in the following format (example):

{
  "files": [
    {
      "filename": "someFile.md",
      "content": "## Example\nHere is some content..."
    },
    {
      "filename": "anotherFile.md",
      "content": "...more content..."
    }
  ]
}

Only include .md files in your "files" array. Each "filename" must go into the memory-bank folder,
and each "content" must be valid markdown.

Use the context below. Summarize or reference it as you see fit.
You may create or omit any memory-bank files you believe are helpful.

---- project info ----
%s

---- code analysis ----
%s

---- specification for the memory bank ----

%s`, projectInfo, codeAnalysis, memoryBankSpec)
}

func updatePrompt(name, currentContent, insights string) string {
	return fmt.Sprintf(`You are maintaining the '%s.md' file in a project's memory bank.
The file currently contains:

%s

The user wants to add or update this file with the following information:

%s

Your task:
1. Integrate the new information with the existing content
2. Resolve any contradictions, with preference to the new information
3. Organize the content logically with clear sections
4. Keep the same markdown formatting style
5. Update any outdated information
6. Make sure all information is consistent

Return the COMPLETE updated file content, not just the changes.`, name, currentContent, insights)
}

func clarifyPrompt(instructions string, analysis *TaskAnalysis, info *scan.ProjectInfo) string {
	hasSnippets := "No"
	if len(analysis.CodeSnippets) > 0 {
		hasSnippets = "Yes"
	}
	return fmt.Sprintf(`I have a feature request or task description that might need clarification:

%s

Based on the provided task description and the following analysis:
- File references: %s
- Code snippets: %s
- Project context: This is a %s project

Please identify 1-3 specific clarifying questions that would help make this task description more precise and actionable.
Focus on:
1. Any ambiguous requirements
2. Missing technical details
3. Scope clarification
4. Implementation preferences
5. Integration points

Return ONLY the numbered questions, nothing else.`,
		instructions,
		strings.Join(analysis.FileReferences, ", "),
		hasSnippets,
		strings.Join(info.Languages, ", "))
}

func planPrompt(instructions, memoryContext string, analysis *TaskAnalysis, info *scan.ProjectInfo) string {
	technologies := strings.Join(append(append([]string{}, info.Languages...), info.Frameworks...), ", ")

	fileRefs := "None"
	if len(analysis.FileReferences) > 0 {
		fileRefs = strings.Join(analysis.FileReferences, ", ")
	}
	snippets := "None"
	if len(analysis.CodeSnippets) > 0 {
		snippets = strings.Join(analysis.CodeSnippets, "\n\n")
	}

	return fmt.Sprintf(`You are a senior developer and technical lead charged with creating a detailed implementation plan.

# TASK DESCRIPTION
%s

# PROJECT CONTEXT
Technologies: %s
Referenced files: %s
Code snippets:
`+"```\n%s\n```"+`

# MEMORY BANK CONTEXT
%s

Based on all the information above, create a comprehensive implementation plan that will guide
a junior developer through implementing this feature or task.

Your plan MUST include:
1) A clear breakdown of all implementation steps in the exact order they should be performed
2) Technical details and considerations drawn from the memory bank context
3) Estimated effort for each task (Low/Medium/High)
4) Dependencies between tasks
5) Any potential challenges or gotchas to watch out for
6) Testing strategies for the implementation

Format your response as a markdown checklist with nested items where appropriate.
Each major step should include:
- A descriptive title in **bold**
- The estimated effort
- Detailed sub-steps indented under the main step
- Any specific technical guidance drawn from the memory bank
- Any referenced files or code that will need to be modified

End your plan with a reminder for the developer to update the memory bank with any new patterns or insights discovered during implementation.

Remember that you're writing for a junior developer who might not know all the context, so be explicit and clear in your instructions.`,
		instructions, technologies, fileRefs, snippets, memoryContext)
}
