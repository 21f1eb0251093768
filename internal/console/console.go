// Package console renders the interactive screens: scenario menu, situation
// display, choice prompts, and the ending summary. All input is line based;
// output goes through lipgloss styles that degrade to plain text when the
// terminal has no color support.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"althistory/internal/model"
)

const screenWidth = 80

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Width(screenWidth).Align(lipgloss.Center)
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dividerSty  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	optionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	exitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	wrapStyle   = lipgloss.NewStyle().Width(screenWidth)
)

// UI is the console surface. It is not safe for concurrent use; one
// goroutine drives the whole interaction.
type UI struct {
	in  *bufio.Reader
	out io.Writer
}

// New builds a UI on stdin and stdout.
func New() *UI {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO builds a UI on the given streams.
func NewWithIO(in io.Reader, out io.Writer) *UI {
	return &UI{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Welcome shows the opening screen and waits for the player.
func (u *UI) Welcome() {
	u.clearScreen()
	u.printHeader("ALTERNATE HISTORIES EXPLORER")

	u.println(accentStyle.Render("Welcome to the Alternate Histories Explorer!"))
	u.println("")
	u.println("Explore pivotal moments in history and discover how different choices")
	u.println("could have changed the course of human civilization.")
	u.println("")
	u.println(optionStyle.Render("• Choose from historical scenarios"))
	u.println(optionStyle.Render("• Make decisions at crucial turning points"))
	u.println(optionStyle.Render("• See how your choices reshape history"))
	u.println("")
	u.waitForEnter("Press Enter to continue...")
}

// SelectScenario shows the scenario menu until the player picks an entry or
// chooses to exit. Reports false when the player exits or input ends.
func (u *UI) SelectScenario(scenarios []model.Scenario) (string, bool) {
	exitOption := len(scenarios) + 1

	for {
		u.clearScreen()
		u.printHeader("SELECT A HISTORICAL SCENARIO")

		u.println(accentStyle.Render("Available scenarios:"))
		u.println("")
		for i, scenario := range scenarios {
			u.println(fmt.Sprintf("%s %s", optionStyle.Render(fmt.Sprintf("%d.", i+1)), scenario.Description))
			u.println("")
		}
		u.println(fmt.Sprintf("%s Exit application", exitStyle.Render(fmt.Sprintf("%d.", exitOption))))
		u.printSeparator()

		u.print(promptStyle.Render(fmt.Sprintf("\nEnter your choice (1-%d): ", exitOption)))
		line, ok := u.readLine()
		if !ok {
			return "", false
		}

		num, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		switch {
		case num == exitOption:
			return "", false
		case num >= 1 && num <= len(scenarios):
			return scenarios[num-1].ID, true
		default:
			u.println(exitStyle.Render("Invalid choice. Please try again."))
			u.waitForEnter("Press Enter to continue...")
		}
	}
}

// ShowSituation renders the current state of the session.
func (u *UI) ShowSituation(snap model.StateSnapshot) {
	u.clearScreen()
	u.printHeader("SCENARIO: " + strings.ToUpper(snap.ScenarioName))

	u.println(accentStyle.Render("Current Situation:"))
	u.println("")
	u.println(wrapStyle.Render(snap.Situation))
	u.println("")

	if len(snap.Alterations) > 0 {
		u.println(noticeStyle.Render("Timeline Alterations:"))
		for i, alteration := range snap.Alterations {
			u.println(detailStyle.Render(fmt.Sprintf("  %d. %s", i+1, alteration)))
		}
		u.println("")
	}
	if snap.Decisions > 0 {
		u.println(optionStyle.Render(fmt.Sprintf("Decisions made so far: %d", snap.Decisions)))
		u.println("")
	}
}

// PromptChoice presents the options and reads the player's pick. Reports
// false when the player returns to the scenario menu or input ends.
func (u *UI) PromptChoice(options []model.ChoiceOption) (string, bool) {
	if len(options) == 0 {
		return "", false
	}
	backOption := len(options) + 1

	u.printSeparator()
	u.println(accentStyle.Render("What do you choose?"))
	u.println("")
	for i, option := range options {
		u.println(fmt.Sprintf("%s %s", optionStyle.Render(fmt.Sprintf("%d.", i+1)), option.Description))
		if option.PotentialImpact != "" {
			u.println(detailStyle.Render("   → " + option.PotentialImpact))
		}
		u.println("")
	}
	u.println(fmt.Sprintf("%s Return to scenario selection", exitStyle.Render(fmt.Sprintf("%d.", backOption))))

	for {
		u.print(promptStyle.Render(fmt.Sprintf("\nEnter your choice (1-%d): ", backOption)))
		line, ok := u.readLine()
		if !ok {
			return "", false
		}

		num, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		switch {
		case num == backOption:
			return "", false
		case num >= 1 && num <= len(options):
			return options[num-1].ID, true
		default:
			u.println(exitStyle.Render("Invalid choice. Please try again."))
		}
	}
}

// ShowEnding renders the conclusion of a completed session and waits for
// the player to acknowledge it.
func (u *UI) ShowEnding(snap model.StateSnapshot) {
	u.printSeparator()
	u.println("")
	u.println(accentStyle.Render("SCENARIO COMPLETE"))
	u.println("")
	u.println("Your choices have led to this conclusion:")
	u.println("")
	u.println(wrapStyle.Render(snap.Situation))

	if len(snap.Alterations) > 0 {
		u.println("")
		u.println(noticeStyle.Render("Final Timeline Changes:"))
		for i, alteration := range snap.Alterations {
			u.println(detailStyle.Render(fmt.Sprintf("  %d. %s", i+1, alteration)))
		}
	}
	u.println("")
	u.waitForEnter("Press Enter to return to scenario selection...")
}

// Goodbye shows the closing screen.
func (u *UI) Goodbye() {
	u.clearScreen()
	u.printHeader("THANK YOU FOR EXPLORING")

	u.println(accentStyle.Render("Thank you for exploring alternate histories!"))
	u.println("")
	u.println("Remember: Every choice we make shapes the future.")
	u.println("History is not just what happened, but what could have been.")
	u.println("")
	u.println(optionStyle.Render("Goodbye, time traveler!"))
	u.println("")
}

// ShowInterrupted tells the player the session was cut short.
func (u *UI) ShowInterrupted() {
	u.println("")
	u.println(accentStyle.Render("Application interrupted by user."))
}

func (u *UI) clearScreen() {
	u.print("\x1b[2J\x1b[H")
}

func (u *UI) printHeader(title string) {
	rule := ruleStyle.Render(strings.Repeat("=", screenWidth))
	u.println("")
	u.println(rule)
	u.println(headerStyle.Render(title))
	u.println(rule)
	u.println("")
}

func (u *UI) printSeparator() {
	u.println(dividerSty.Render(strings.Repeat("-", screenWidth)))
}

func (u *UI) waitForEnter(prompt string) {
	u.print(noticeStyle.Render(prompt))
	_, _ = u.readLine()
}

// readLine reads one line of input. Reports false once the stream ends.
func (u *UI) readLine() (string, bool) {
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (u *UI) print(s string) {
	fmt.Fprint(u.out, s)
}

func (u *UI) println(s string) {
	fmt.Fprintln(u.out, s)
}
