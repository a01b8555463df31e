package tui

import (
	"errors"
	"fmt"

	"deesha/statetheme/internal/palette"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels an interactive flow.
var ErrAborted = errors.New("selection aborted by user")

// PickStateForm asks the user to choose a state from table. initial, when it
// names a state, is preselected. accessible switches huh to its plain-prompt
// mode for screen readers.
func PickStateForm(table palette.Table, initial string, accessible bool) (string, error) {
	options := buildStateOptions(table)
	if len(options) == 0 {
		return "", fmt.Errorf("no states available")
	}

	selected := ""
	if _, ok := table.Lookup(initial); ok {
		selected = initial
	}

	field := huh.NewSelect[string]().
		Title("Select a state").
		Description("Type / to filter").
		Options(options...).
		Value(&selected).
		Filtering(true).
		Height(12)

	if err := runForm(accessible, huh.NewGroup(field)); err != nil {
		return "", err
	}
	return selected, nil
}

// buildStateOptions returns one option per state, sorted by name, labelled
// with the palette's inspiration.
func buildStateOptions(table palette.Table) []huh.Option[string] {
	names := table.Names()
	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		e := table[name]
		label := name
		if e.Inspiration != "" {
			label = fmt.Sprintf("%s - %s", name, e.Inspiration)
		}
		options = append(options, huh.NewOption(label, name))
	}
	return options
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
