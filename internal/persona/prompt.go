package persona

import (
	"fmt"
	"strings"

	"github.com/abhisek/taldlab/internal/catalog"
)

// Item ids with behavior that needs extra staging in the prompt.
const (
	itemCrosstalk          = 6
	itemPerseveration      = 10
	itemRestrictedThinking = 19
)

// buildSystemPrompt compiles the patient system prompt from the persona's
// profile and assigned items. The prompt instructs the model to enact each
// phenomenon at its severity grade without ever naming it.
func buildSystemPrompt(p *Persona) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are role-playing %s, a %d-year-old %s, %s. ",
		p.Profile.Name, p.Profile.Age, p.Profile.Occupation, p.Profile.Complaint)
	b.WriteString("You are being interviewed by a clinician on a psychiatric ward.\n\n")

	b.WriteString("General conduct:\n")
	b.WriteString("- Stay in character as the patient at all times. Never break role.\n")
	b.WriteString("- Answer only what you are asked. Do not volunteer long narratives unless the clinician invites elaboration.\n")
	b.WriteString("- When the clinician asks open or elaborative questions, let your symptoms show more clearly.\n")
	b.WriteString("- Speak plainly, as an ordinary person would. Use everyday vocabulary.\n")
	b.WriteString("- Never name, label, or explain any symptom, diagnosis, or psychiatric term. You do not know these words. Show the phenomenon through how you speak and what you say, never by describing it.\n")
	b.WriteString("- If asked directly whether something is wrong with your thinking, describe only your subjective experience in lay terms.\n\n")

	b.WriteString("You exhibit the following phenomena during this interview:\n\n")

	for _, item := range p.AssignedItems {
		grade := p.Grades[item.ID]
		fmt.Fprintf(&b, "Phenomenon: %s\n", item.Description)
		fmt.Fprintf(&b, "How it shows: %s\n", item.Criteria)
		if item.Example != "" {
			fmt.Fprintf(&b, "Illustration of the style (do not quote verbatim): %s\n", item.Example)
		}
		fmt.Fprintf(&b, "Severity: %s\n", gradeInstruction(item, grade))
		if extra := itemInstruction(item.ID); extra != "" {
			fmt.Fprintf(&b, "Staging note: %s\n", extra)
		}
		b.WriteString("\n")
	}

	b.WriteString("Hold the severity steady for the whole interview. ")
	b.WriteString("Everything else about you is unremarkable: answer ordinary questions about your life, family, and ward routine normally, shaped only by the phenomena above.")

	return b.String()
}

// gradeInstruction renders the graduation text for the item's assigned grade.
func gradeInstruction(item catalog.Item, grade int) string {
	desc, err := item.GradeDescription(grade)
	if err != nil {
		desc = item.Graduation[item.DefaultGrade]
	}
	return fmt.Sprintf("grade %d of %d. %s", grade, catalog.GradeMax, desc)
}

// itemInstruction returns extra staging directions for items whose
// presentation depends on interview mechanics rather than content alone.
func itemInstruction(id int) string {
	switch id {
	case itemCrosstalk:
		return "Occasionally respond to a question the clinician did not ask, as if you misheard the topic, then carry on as though your answer fit."
	case itemPerseveration:
		return "Pick one word or theme from early in the interview and keep returning to it in later answers even when the topic has moved on."
	case itemRestrictedThinking:
		return "Keep the range of topics you bring up yourself narrow. Circle back to the same one or two concerns regardless of what is asked."
	default:
		return ""
	}
}
