package catalog

import "fmt"

// Category distinguishes observer-rated phenomena from patient-reported ones.
type Category string

const (
	CategoryObjective  Category = "objective"
	CategorySubjective Category = "subjective"
)

// GradeMax is the top of the TALD severity graduation (0 = not present).
const GradeMax = 4

// Item is a single TALD phenomenon. Items are immutable after load.
type Item struct {
	ID          int
	Name        string
	Category    Category
	Description string

	// Criteria states what the rater must observe (or the patient report)
	// for the phenomenon to count as present.
	Criteria string

	// Example is a short manifestation sample used in reports and persona
	// prompts.
	Example string

	// Synonyms are alternative clinical labels accepted when resolving
	// free-text answers.
	Synonyms []string

	// ExampleCues are keywords of probing questions that target this item.
	// The evaluation engine scans trainee questions for them.
	ExampleCues []string

	// Graduation maps severity grades 0..4 to rating descriptions.
	Graduation [GradeMax + 1]string

	// DefaultGrade is the severity the simulated patient manifests when the
	// caller does not choose one.
	DefaultGrade int
}

// DisplayName returns the item formatted for listings, e.g.
// "5. Derailment (objective)".
func (it Item) DisplayName() string {
	return fmt.Sprintf("%d. %s (%s)", it.ID, it.Name, it.Category)
}

// GradeDescription returns the graduation text for the given grade.
func (it Item) GradeDescription(grade int) (string, error) {
	if grade < 0 || grade > GradeMax {
		return "", fmt.Errorf("grade must be between 0 and %d, got %d", GradeMax, grade)
	}
	return it.Graduation[grade], nil
}

// CatalogError reports a malformed or incomplete item set. It is fatal at
// startup: a session must never run against a broken catalog.
type CatalogError struct {
	Reason string
}

func (e *CatalogError) Error() string {
	return "catalog: " + e.Reason
}

// NotFoundError reports a lookup for an id the catalog does not contain.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog: no item with id %d", e.ID)
}
