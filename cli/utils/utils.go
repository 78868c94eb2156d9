package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"docvault/cli/styles"
)

// IsInteractive reports whether both stdin and stdout are attached to a
// terminal, which is required for running forms.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// RunWithSpinner runs action behind a spinner, or directly when there is no
// terminal to draw on. It returns once action has finished.
func RunWithSpinner(title string, action func()) {
	if !IsInteractive() {
		action()
		return
	}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		action()
	}()

	_ = spinner.New().Title(title).Action(func() {
		<-finished
	}).Run()

	<-finished
}

// GenerateTitle renders a breadcrumb-style title for forms and views
func GenerateTitle(title string) string {
	return styles.TitleStyle.Render("docvault > " + title)
}

// StrFlag sets strVar to the value following "-n" or "--name" in args, or to
// fallback if the flag is absent.
func StrFlag(strVar *string, name string, fallback string, args []string) {
	if len(*strVar) > 0 {
		// This var has already been set
		return
	}

	flagNameA := fmt.Sprintf("-%s", string(name[0]))
	flagNameB := fmt.Sprintf("--%s", name)

	for idx, arg := range args {
		if arg == flagNameA || arg == flagNameB {
			if idx+1 > len(args)-1 {
				// Invalid flag value
				break
			}
			*strVar = args[idx+1]
			return
		} else if value, ok := strings.CutPrefix(arg, flagNameB+"="); ok {
			*strVar = value
			return
		}
	}

	*strVar = fallback
}

func BoolFlag(boolVar *bool, name string, fallback bool, args []string) {
	if *boolVar {
		// This var has already been set
		return
	}

	flagNameA := fmt.Sprintf("-%s", string(name[0]))
	flagNameB := fmt.Sprintf("--%s", name)

	for _, arg := range args {
		if arg == flagNameA || arg == flagNameB {
			*boolVar = true
			return
		}
	}

	*boolVar = fallback
}

// HasFlag reports whether the long form of a flag appears in args.
func HasFlag(name string, args []string) bool {
	for _, arg := range args {
		if arg == "--"+name || strings.HasPrefix(arg, "--"+name+"=") {
			return true
		}
	}

	return false
}

// Positional returns the args that are not flags or flag values. Flags named
// in valued take the following arg as their value.
func Positional(args []string, valued ...string) []string {
	var positional []string
	skip := false
	for _, arg := range args {
		if skip {
			skip = false
			continue
		}

		if strings.HasPrefix(arg, "-") {
			for _, name := range valued {
				if arg == "--"+name || arg == "-"+string(name[0]) {
					skip = true
					break
				}
			}
			continue
		}

		positional = append(positional, arg)
	}

	return positional
}

func ReadableFileSize(b int64) string {
	if b < 0 {
		b = 0
	}

	return humanize.Bytes(uint64(b))
}
