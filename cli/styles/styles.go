package styles

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var Theme = DocVaultTheme()

var (
	white       = lipgloss.Color("#ffffff")
	gray        = lipgloss.Color("#a6adc8")
	accent      = lipgloss.Color("#2f6fdb")
	accentLight = lipgloss.Color("#7aa7f0")
	public      = lipgloss.Color("#3EB974")
	private     = lipgloss.Color("#d9a441")
	destructive = lipgloss.Color("#a83c3c")
)

func DocVaultTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(white)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(white).Bold(true)
	t.Focused.Directory = t.Focused.Directory.Foreground(accentLight)
	t.Focused.Description = t.Focused.Description.Foreground(gray)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(destructive)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(destructive)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accentLight).Bold(true)
	t.Focused.Option = t.Focused.Option.PaddingLeft(1).PaddingRight(1).Foreground(gray)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(white).PaddingLeft(1).PaddingRight(1)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(accentLight)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.PaddingLeft(1).PaddingRight(1)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(white).Background(accent)

	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(white)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(gray)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accentLight)

	t.Help = help.New().Styles

	// Blurred styles.
	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	return t
}

var (
	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Theme.Focused.NoteTitle.GetForeground())
	HelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	DirStyle     = lipgloss.NewStyle().Foreground(accentLight)
	PublicStyle  = lipgloss.NewStyle().Foreground(public)
	BoldStyle    = lipgloss.NewStyle().Bold(true).Foreground(Theme.Focused.NoteTitle.GetForeground())
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(Theme.Focused.FocusedButton.GetForeground())
	ErrStyle     = lipgloss.NewStyle().Foreground(Theme.Focused.ErrorMessage.GetForeground())
	SuccessStyle = lipgloss.NewStyle().Foreground(public)

	// Document and folder detail views
	PrivateStyle = lipgloss.NewStyle().Foreground(private)
	IDStyle      = lipgloss.NewStyle().Foreground(gray).Italic(true)
	LabelStyle   = lipgloss.NewStyle().Foreground(accentLight).Width(12)
)

// TableStyles returns the table styles used for document and folder lists.
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(accentLight).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	return s
}

// Field renders one "label value" line of a detail view.
func Field(label, value string) string {
	return LabelStyle.Render(label) + value + "\n"
}

func PrintErrStr(errMsg string) {
	fmt.Fprintln(os.Stderr, ErrStyle.Render(errMsg))
}

func PrintSuccessStr(msg string) {
	fmt.Println(SuccessStyle.Render(msg))
}

func DestructiveTheme() *huh.Theme {
	t := *DocVaultTheme()

	red := lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}

	t.Focused.Base = t.Focused.Base.BorderForeground(lipgloss.Color("238"))
	t.Focused.Title = t.Focused.Title.Foreground(red).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(red)

	return &t
}
