// Package assist implements the question-answering pipeline: preference
// extraction, intent classification, context assembly, and answer generation.
package assist

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/duynguyendang/gitguide/internal/session"
	"github.com/duynguyendang/gitguide/pkg/index"
	"github.com/duynguyendang/gitguide/pkg/prompts"
)

// Generator produces the final natural-language answer for a rendered prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// fallbackAnswer is returned whenever the pipeline cannot produce a real
// answer. Respond trades precision for availability: it always returns a
// string.
const fallbackAnswer = `I apologize, but I encountered an issue while processing your request. Here's a general answer:

If you're looking to contribute to open source projects, consider:

1. First-time contributor repositories like firstcontributions/first-contributions or up-for-grabs.net
2. Projects that align with your skills (e.g., Python, JavaScript, documentation)
3. Look for "good first issue" or "help wanted" labels on GitHub issues

The basic contribution process is:
- Fork the repository
- Clone it locally
- Create a branch for your changes
- Make and test your changes
- Submit a pull request

For more specific recommendations, please try rephrasing your question.`

// builtinAnswerPrompt mirrors prompts/answer.prompt so the responder works
// without the prompts directory on disk.
const builtinAnswerPrompt = `---
model: gemini-1.5-pro
temperature: 0.7
---
You are GitGuide, an expert assistant for open-source contributors on GitHub. Answer the following question thoughtfully and helpfully.

Use the provided context data to give specific, personalized recommendations. The context includes real-time data from GitHub.

Context data (JSON): {{.Context}}
{{if .Knowledge}}
Background knowledge:
{{.Knowledge}}
{{end}}{{if .History}}
Conversation so far:
{{.History}}
{{end}}
User question: {{.Question}}

Important guidelines:
1. Be specific and helpful - don't give generic responses
2. If recommending repositories, include links and brief descriptions
3. If discussing issues, include issue numbers and links
4. If explaining contribution processes, provide step-by-step instructions
5. Always tailor your response to the user's skill level and interests
6. Provide actionable next steps the user can take
7. If you don't have specific information, be honest but still try to be helpful`

// Responder runs the full pipeline for one question.
type Responder struct {
	assembler *Assembler
	generator Generator
	extractor Extractor
	prompt    *prompts.Prompt
}

// NewResponder creates a Responder. promptPath points at the answer prompt
// file; when it cannot be loaded the built-in template is used instead.
func NewResponder(assembler *Assembler, generator Generator, promptPath string) *Responder {
	p, err := prompts.Load(promptPath)
	if err != nil {
		log.Printf("assist: using built-in answer prompt: %v", err)
		p, _ = prompts.Parse(builtinAnswerPrompt)
	}
	return &Responder{
		assembler: assembler,
		generator: generator,
		prompt:    p,
	}
}

// Respond updates the session's preferences from the question, assembles the
// context payload, renders the answer prompt, and calls the generator. With
// useRealtime the session's knowledge index contributes retrieved snippets.
// Respond never fails: any pipeline error yields the fixed fallback answer.
func (r *Responder) Respond(ctx context.Context, sess *session.Session, question string, useRealtime bool) string {
	sess.AddLanguages(r.extractor.Languages(question)...)
	sess.AddInterests(r.extractor.Interests(question)...)

	payload := r.assembler.Assemble(ctx, sess, question)
	contextJSON, err := json.Marshal(payload)
	if err != nil {
		log.Printf("assist: encoding context payload: %v", err)
		return fallbackAnswer
	}

	var knowledge []string
	if useRealtime {
		knowledge = sess.Knowledge().Search(ctx, question, index.DefaultTopK)
	}

	promptText, err := r.prompt.Execute(map[string]any{
		"Context":   string(contextJSON),
		"Knowledge": strings.Join(knowledge, "\n"),
		"History":   formatHistory(sess.History()),
		"Question":  question,
	})
	if err != nil {
		log.Printf("assist: rendering answer prompt: %v", err)
		return fallbackAnswer
	}

	answer, err := r.generator.Generate(ctx, promptText)
	if err != nil {
		log.Printf("assist: answer generation failed: %v", err)
		return fallbackAnswer
	}

	sess.AddTurn(question, answer)
	return answer
}

func formatHistory(turns []session.Turn) string {
	var sb strings.Builder
	for _, turn := range turns {
		sb.WriteString("User: ")
		sb.WriteString(turn.Question)
		sb.WriteString("\nAssistant: ")
		sb.WriteString(turn.Answer)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
