// Package persona assembles simulated patient personas for training
// interviews. A persona binds one or more thought and language disorder
// items, each at a severity grade, to a patient profile and compiles the
// system prompt that drives the patient model.
package persona

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/abhisek/taldlab/internal/catalog"
)

// Mode selects the training variant.
type Mode string

const (
	// ModeGuided assigns exactly one item known to the evaluator.
	ModeGuided Mode = "guided"
	// ModeExploratory assigns one to three items.
	ModeExploratory Mode = "exploratory"
)

const (
	maxExploratoryItems = 3
)

// ConfigurationError reports an invalid persona specification.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid persona configuration: %s", e.Reason)
}

// Profile is the patient's biographical frame. It shapes the persona's
// voice but carries no disorder content of its own.
type Profile struct {
	Name       string
	Age        int
	Occupation string
	Complaint  string
}

// DefaultProfile returns the standard inpatient profile used when the
// caller does not supply one.
func DefaultProfile() Profile {
	return Profile{
		Name:       "Jonas Weber",
		Age:        34,
		Occupation: "warehouse clerk",
		Complaint:  "admitted after several weeks of social withdrawal and poor sleep",
	}
}

// Spec describes the persona to build.
type Spec struct {
	Mode    Mode
	ItemIDs []int
	// Grades overrides the per-item severity (0 to 4). Items not present
	// fall back to their default grade.
	Grades map[int]int
	// Profile overrides the default patient profile when Name is set.
	Profile Profile
}

// Persona is a fully assembled simulated patient.
type Persona struct {
	Mode          Mode
	Profile       Profile
	AssignedItems []catalog.Item
	// Grades holds the severity per assigned item id.
	Grades       map[int]int
	SystemPrompt string
}

// ItemIDs returns the assigned item ids in ascending order.
func (p *Persona) ItemIDs() []int {
	ids := make([]int, len(p.AssignedItems))
	for i, it := range p.AssignedItems {
		ids[i] = it.ID
	}
	sort.Ints(ids)
	return ids
}

// Build validates spec against the catalog and assembles the persona,
// including its compiled system prompt.
func Build(c *catalog.Catalog, spec Spec) (*Persona, error) {
	switch spec.Mode {
	case ModeGuided:
		if len(spec.ItemIDs) != 1 {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("guided mode requires exactly 1 item, got %d", len(spec.ItemIDs)),
			}
		}
	case ModeExploratory:
		if len(spec.ItemIDs) < 1 || len(spec.ItemIDs) > maxExploratoryItems {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("exploratory mode requires 1 to %d items, got %d", maxExploratoryItems, len(spec.ItemIDs)),
			}
		}
	default:
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("unknown mode %q", spec.Mode),
		}
	}

	seen := make(map[int]bool, len(spec.ItemIDs))
	items := make([]catalog.Item, 0, len(spec.ItemIDs))
	grades := make(map[int]int, len(spec.ItemIDs))
	for _, id := range spec.ItemIDs {
		if seen[id] {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("duplicate item id %d", id),
			}
		}
		seen[id] = true

		item, err := c.Lookup(id)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		grade := item.DefaultGrade
		if g, ok := spec.Grades[id]; ok {
			if g < 0 || g > catalog.GradeMax {
				return nil, &ConfigurationError{
					Reason: fmt.Sprintf("grade %d for item %d out of range 0..%d", g, id, catalog.GradeMax),
				}
			}
			grade = g
		}
		grades[item.ID] = grade
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	profile := spec.Profile
	if profile.Name == "" {
		profile = DefaultProfile()
	}

	p := &Persona{
		Mode:          spec.Mode,
		Profile:       profile,
		AssignedItems: items,
		Grades:        grades,
	}
	p.SystemPrompt = buildSystemPrompt(p)
	return p, nil
}

// Randomize draws item ids for the given mode. Guided draws one item,
// exploratory draws one to three distinct items.
func Randomize(c *catalog.Catalog, mode Mode, rng *rand.Rand) ([]int, error) {
	items := c.Items()
	switch mode {
	case ModeGuided:
		return []int{items[rng.Intn(len(items))].ID}, nil
	case ModeExploratory:
		n := 1 + rng.Intn(maxExploratoryItems)
		perm := rng.Perm(len(items))
		ids := make([]int, n)
		for i := 0; i < n; i++ {
			ids[i] = items[perm[i]].ID
		}
		sort.Ints(ids)
		return ids, nil
	default:
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown mode %q", mode)}
	}
}
