package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/lexgap/internal/logging"
	"github.com/aretw0/lexgap/internal/presentation/tui"
	"github.com/aretw0/lexgap/pkg/domain"
	"github.com/aretw0/lexgap/pkg/session"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	GraphPath string
	Store     StoreOptions
	Debug     bool
	NoBanner  bool
}

// RunSession drives one interactive triage session over stdin/stdout.
func RunSession(version string, opts RunOptions) error {
	logger := logging.ForDebug(opts.Debug)

	if !opts.NoBanner {
		tui.PrintBanner(version)
	}

	g, err := LoadGraph(opts.GraphPath)
	if err != nil {
		return err
	}

	store := SetupStore(opts.Store, logger)
	sess := session.New(g, store, session.WithLogger(logger))

	render := tui.NewRenderer()
	reader := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	for {
		switch sess.Phase() {
		case session.PhaseAnswering:
			done, err := askQuestion(sess, render, reader)
			if err != nil {
				return err
			}
			if done {
				return nil
			}

		case session.PhaseFinalizing:
			done, err := collectDetails(ctx, sess, reader)
			if err != nil {
				return err
			}
			if done {
				return nil
			}

		case session.PhaseComplete:
			fmt.Print("Start a new analysis? [y/N] ")
			if readLine(reader) == "y" {
				sess.Restart()
				continue
			}
			return nil
		}
	}
}

// askQuestion shows the current node and handles one round of input.
// It returns done=true when the user quits.
func askQuestion(sess *session.Session, render func(string) (string, error), reader *bufio.Reader) (bool, error) {
	node, err := sess.Current()
	if err != nil {
		return false, err
	}

	fmt.Printf("\nQuestion %d\n", len(sess.Log())+1)
	if out, rerr := render(node.Text); rerr == nil {
		fmt.Print(out)
	} else {
		fmt.Println(node.Text)
	}

	if pending, ok := sess.Pending(); ok {
		fmt.Printf("(selected: %s)\n", pending)
	}
	if notice := sess.Notice(); notice != "" {
		fmt.Printf("! %s\n", notice)
	}

	prompt := "[y]es  [n]o  [b]ack"
	if node.Hint != "" {
		prompt += "  [h]int"
	}
	fmt.Printf("%s  [q]uit > ", prompt)

	input := readLine(reader)
	switch input {
	case "q", "quit", "exit":
		fmt.Println("Bye!")
		return true, nil

	case "b", "back":
		if err := sess.GoBack(); err != nil {
			if errors.Is(err, domain.ErrNothingToUndo) {
				fmt.Println("Already at the first question.")
				return false, nil
			}
			return false, err
		}
		return false, nil

	case "h", "hint":
		if node.Hint == "" {
			fmt.Println("No hint for this question.")
			return false, nil
		}
		if out, rerr := render(node.Hint); rerr == nil {
			fmt.Print(out)
		} else {
			fmt.Println(node.Hint)
		}
		return false, nil
	}

	answer, ok := domain.ParseAnswer(input)
	if !ok {
		fmt.Println("Please answer y or n.")
		return false, nil
	}

	if err := sess.SelectAnswer(answer); err != nil {
		return false, reportUserError(err)
	}
	if err := sess.Advance(); err != nil {
		return false, reportUserError(err)
	}
	return false, nil
}

// collectDetails shows the reached outcome and gathers the submission
// metadata. It returns done=true when the user quits.
func collectDetails(ctx context.Context, sess *session.Session, reader *bufio.Reader) (bool, error) {
	outcome, ok := sess.Outcome()
	if !ok {
		return false, fmt.Errorf("finalizing phase without an outcome")
	}

	d := tui.Display(outcome)
	fmt.Printf("\n%s\n%s\n", tui.Colorize(outcome, d.Title), d.Description)
	if d.Advisory != "" {
		fmt.Printf("\n%s\n", d.Advisory)
	}
	fmt.Println("\nType 'back' at any prompt to review your answers.")

	fmt.Print("\nYour name: ")
	name := readLine(reader)
	if name == "back" {
		return false, goBack(sess)
	}

	fmt.Print("Details (links, norm/law name, articles, context): ")
	details := readLine(reader)
	if details == "back" {
		return false, goBack(sess)
	}

	entry, err := sess.FinalizeSubmission(ctx, details, name)
	if err != nil {
		var valErr *domain.ValidationError
		var persErr *domain.PersistenceError
		switch {
		case errors.As(err, &valErr):
			fmt.Printf("! %s\n", valErr.Msg)
			return false, nil // stay in finalizing, re-prompt
		case errors.As(err, &persErr):
			fmt.Printf("! saving failed: %v\n", persErr)
			fmt.Print("Try again? [Y/n] ")
			if readLine(reader) == "n" {
				return true, nil
			}
			return false, nil
		default:
			return false, err
		}
	}

	fmt.Printf("\nAnalysis recorded (id %s, %d questions answered).\n", entry.ID, len(entry.AnsweredQuestions))
	return false, nil
}

func goBack(sess *session.Session) error {
	if err := sess.GoBack(); err != nil && !errors.Is(err, domain.ErrNothingToUndo) {
		return err
	}
	return nil
}

// reportUserError prints recoverable validation problems and propagates
// everything else (configuration errors are fatal for the session).
func reportUserError(err error) error {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		fmt.Printf("! %s\n", valErr.Msg)
		return nil
	}
	return err
}

func readLine(reader *bufio.Reader) string {
	text, _ := reader.ReadString('\n')
	return strings.TrimSpace(text)
}
