package digest

import "fmt"

const Persona = `You are a UPSC Senior Faculty and Subject Matter Expert who writes model answers for the Civil Services Mains examination.
Your answers are exam-ready, balanced, and backed by evidence.`

const userPromptTemplate = `Context (today's current affairs): %s
Paper: %s

Task:
1. Create one UPSC Mains question relevant to the paper, preferably linked to the context.
2. Write a model answer of 250 words or more.

Use exactly these section labels, in this order, each on its own line in bold:
**QUESTION**
**INTRODUCTION**
**BODY** (use subheadings and bullet points)
**CONCLUSION** (way forward)

STRICT RULES:
- NO TABLES. Use bullet points for comparisons.
- Support every claim in the BODY with evidence: DATA, reports, CASE STUDIES, committee recommendations, or GOVT SCHEMES.
- For GS-4, always frame the question as an ethical case study or a value-based question.
- Format for Telegram: use **Bold** for headers, no HTML, no code blocks.`

// UserPrompt embeds the day's paper and scraped context into the task.
func UserPrompt(subject, topicContext string) string {
	return fmt.Sprintf(userPromptTemplate, topicContext, subject)
}
