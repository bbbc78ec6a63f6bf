package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/taldlab/internal/catalog"
	"github.com/abhisek/taldlab/internal/compare"
	"github.com/abhisek/taldlab/internal/evaluate"
	"github.com/abhisek/taldlab/internal/interview"
	"github.com/abhisek/taldlab/internal/llm"
	"github.com/abhisek/taldlab/internal/persona"
	"github.com/abhisek/taldlab/internal/report"
	"github.com/abhisek/taldlab/internal/store"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a training interview with a simulated patient",
	Long: "Starts a line-based interview. Type your questions; the patient answers. " +
		"Type /done to end the interview and give your judgment.",
	RunE: runInterview,
}

func init() {
	interviewCmd.Flags().StringP("mode", "m", "guided", "Training mode: guided or exploratory")
	interviewCmd.Flags().IntSliceP("items", "i", nil, "Item ids to enact (random when omitted)")
	interviewCmd.Flags().IntP("grade", "g", -1, "Severity grade 0-4 for all enacted items (item default when omitted)")
	interviewCmd.Flags().Int("turn-limit", interview.DefaultTurnLimit, "Maximum trainee turns")
	interviewCmd.Flags().Bool("no-commentary", false, "Skip the LLM clinical commentary in the report")
}

func runInterview(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	itemIDs, _ := cmd.Flags().GetIntSlice("items")
	grade, _ := cmd.Flags().GetInt("grade")
	turnLimit, _ := cmd.Flags().GetInt("turn-limit")
	noCommentary, _ := cmd.Flags().GetBool("no-commentary")

	ctx := context.Background()

	s, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	provider, err := llm.NewProviderFromEnv(ctx, s)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	c, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	mode := persona.Mode(modeFlag)
	if len(itemIDs) == 0 {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		itemIDs, err = persona.Randomize(c, mode, rng)
		if err != nil {
			return err
		}
	}

	spec := persona.Spec{Mode: mode, ItemIDs: itemIDs}
	if grade >= 0 {
		spec.Grades = make(map[int]int, len(itemIDs))
		for _, id := range itemIDs {
			spec.Grades[id] = grade
		}
	}

	p, err := persona.Build(c, spec)
	if err != nil {
		return err
	}

	session := interview.NewSession(p, provider, interview.WithTurnLimit(turnLimit))

	fmt.Printf("Interview started (%s mode, up to %d questions). Type /done when ready to judge.\n\n",
		mode, session.TurnLimit())

	in := bufio.NewScanner(os.Stdin)
	if err := interviewLoop(ctx, session, in); err != nil {
		return err
	}

	ev, err := collectJudgment(c, session, in)
	if err != nil {
		return err
	}

	rep, err := report.Generate(c, ev)
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	if !noCommentary {
		if err := report.NewCommentator(provider).Comment(ctx, rep, session.Transcript()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: commentary unavailable: %v\n", err)
		}
	}

	fmt.Println()
	fmt.Println(rep.Render())

	attempt := &store.Attempt{
		SessionID:     session.ID,
		Mode:          string(ev.Mode),
		AssignedItems: ev.GroundTruth,
		JudgedItems:   ev.JudgedItems,
		Score:         ev.Score,
		Outcome:       attemptOutcome(ev),
		TurnCount:     ev.TurnCount,
	}
	if err := s.SaveAttempt(ctx, attempt); err != nil {
		fmt.Fprintf(os.Stderr, "warning: attempt not saved: %v\n", err)
	}

	return nil
}

// interviewLoop drives the conversation until the trainee types /done or the
// turn limit is reached.
func interviewLoop(ctx context.Context, session *interview.Session, in *bufio.Scanner) error {
	for {
		fmt.Print("You: ")
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if line == "/done" {
			break
		}

		reply, err := session.SubmitTraineeUtterance(ctx, line)
		if errors.Is(err, interview.ErrTurnLimitReached) {
			fmt.Println("\nTurn limit reached. Time to judge.")
			return nil
		}
		var genErr *interview.GenerationError
		if errors.As(err, &genErr) {
			fmt.Fprintf(os.Stderr, "patient reply failed: %v\nPress enter to retry.\n", genErr)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Printf("Patient: %s\n\n", reply.Text)
	}

	if session.State() == interview.StateActive {
		return session.Conclude()
	}
	return nil
}

// collectJudgment prompts for the trainee's call, records it and evaluates
// the closed session.
func collectJudgment(c *catalog.Catalog, session *interview.Session, in *bufio.Scanner) (*evaluate.Evaluation, error) {
	engine := compare.New(c)

	var judgment interview.Judgment
	switch session.Persona.Mode {
	case persona.ModeGuided:
		fmt.Print("\nWhich phenomenon did the patient show? ")
		if !in.Scan() {
			return nil, fmt.Errorf("no judgment given")
		}
		ids, err := engine.ResolveAnswerText([]string{strings.TrimSpace(in.Text())})
		if err != nil {
			return nil, err
		}
		fmt.Print("Why? ")
		rationale := ""
		if in.Scan() {
			rationale = strings.TrimSpace(in.Text())
		}
		judgment = interview.GuidedJudgment{ItemID: ids[0], Rationale: rationale}

	case persona.ModeExploratory:
		fmt.Print("\nWhich phenomena did the patient show? (comma-separated) ")
		if !in.Scan() {
			return nil, fmt.Errorf("no judgment given")
		}
		var texts []string
		for _, part := range strings.Split(in.Text(), ",") {
			if part = strings.TrimSpace(part); part != "" {
				texts = append(texts, part)
			}
		}
		ids, err := engine.ResolveAnswerText(texts)
		if err != nil {
			return nil, err
		}
		judgment = interview.ExploratoryJudgment{ItemIDs: ids}
	}

	if err := session.SubmitJudgment(judgment); err != nil {
		return nil, err
	}
	return evaluate.New(c).Evaluate(session)
}

func attemptOutcome(ev *evaluate.Evaluation) string {
	if ev.Outcome != "" {
		return string(ev.Outcome)
	}
	return fmt.Sprintf("%d/%d", len(ev.GroundTruth)-len(ev.MissedItems), len(ev.GroundTruth))
}
