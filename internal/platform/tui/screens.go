package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kunstkammer/dadaspiel/internal/content"
	"github.com/kunstkammer/dadaspiel/internal/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.sess.Screen() {
	case session.ScreenProfileSelect:
		body = m.viewProfileSelect()
	case session.ScreenCaseSelect:
		body = m.viewCaseSelect()
	case session.ScreenMinigameIntro:
		body = m.viewMinigameIntro()
	case session.ScreenMinigamePlay:
		body = m.viewMinigamePlay()
	case session.ScreenGlitchWin:
		body = m.viewGlitchWin()
	case session.ScreenCaseOutro:
		body = m.viewCaseOutro()
	case session.ScreenFinalEnding:
		body = m.viewFinalEnding()
	case session.ScreenGameOver:
		body = m.viewGameOver()
	}

	if m.debug && m.ring != nil {
		var b strings.Builder
		b.WriteString(body)
		b.WriteString("\n")
		for _, line := range m.ring.Tail(5) {
			b.WriteString(dimStyle.Render(line))
			b.WriteString("\n")
		}
		return b.String()
	}
	return body
}

// viewProfileSelect renders the profile list with its naming and character
// picking sub-modes.
func (m Model) viewProfileSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("D A D A S P I E L"), m.width))
	b.WriteString("\n\n")

	switch m.profMode {
	case modeNaming:
		b.WriteString(centerText("who is playing?", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.nameInput.View(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(dimStyle.Render("Enter: choose a character  |  Esc: back"), m.width))
		return b.String()

	case modePickingCharacter:
		b.WriteString(centerText(fmt.Sprintf("a character for %s", m.nameInput.Value()), m.width))
		b.WriteString("\n\n")
		for i, info := range content.Characters {
			cursor := "  "
			line := fmt.Sprintf("%s%-8s %s", cursor, info.Name, dimStyle.Render(info.Tagline))
			if i == m.charCursor {
				line = accentStyle.Render(fmt.Sprintf("> %-8s", info.Name)) + " " + info.Tagline
			}
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render("Up/Down: choose  |  Enter: create  |  Esc: back"), m.width))
		return b.String()

	case modeConfirmingDelete:
		p := m.sess.Profiles().PendingDelete()
		name := "?"
		if p != nil {
			name = p.Name
		}
		b.WriteString(centerText(dangerStyle.Render(fmt.Sprintf("delete %s and every trace of them?", name)), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(dimStyle.Render("y: delete  |  anything else: keep"), m.width))
		return b.String()
	}

	profiles := m.sess.Profiles().All()
	for i, p := range profiles {
		marks := ""
		if p.GameCompleted {
			marks += doneStyle.Render(" ✔")
		}
		if p.HasDadaToken {
			marks += accentStyle.Render(" ◆")
		}
		line := fmt.Sprintf("%-16s %-8s best %d%s", p.Name, p.Character.Info().Name, p.HighScore, marks)
		if i == m.profCursor {
			line = accentStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	newLine := "  new profile"
	if m.profCursor == len(profiles) {
		newLine = accentStyle.Render("> new profile")
	}
	b.WriteString(centerText(newLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Enter: play  |  X: delete  |  Q: quit"), m.width))

	return b.String()
}

// viewCaseSelect renders the cases available to the active character today.
func (m Model) viewCaseSelect() string {
	var b strings.Builder

	p := m.sess.Profiles().Active()
	b.WriteString("\n")
	if p != nil {
		b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("%s's dossier", p.Name)), m.width))
	}
	b.WriteString("\n\n")

	for i, c := range m.sess.Cases() {
		state := ""
		if p != nil {
			state = fmt.Sprintf("%d/%d", min(p.Cleared(c.ID), len(c.Minigames)), len(c.Minigames))
			if p.Cleared(c.ID) >= len(c.Minigames) {
				state = doneStyle.Render("solved")
			}
		}
		line := fmt.Sprintf("Case %d: %s  %s", c.ID, c.Title, dimStyle.Render(state))
		if i == m.caseCursor {
			line = accentStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.statusLine(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: open the case  |  Esc: log out"), m.width))

	return b.String()
}

// viewMinigameIntro renders the intro card with ability prompts.
func (m Model) viewMinigameIntro() string {
	var b strings.Builder

	c := m.sess.CurrentCase()
	ref := m.sess.CurrentMinigame()
	if c == nil || ref == nil {
		return ""
	}

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("Case %d: %s", c.ID, c.Title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%d of %d: %s", m.sess.MinigameIndex()+1, len(c.Minigames), ref.Name), m.width))
	b.WriteString("\n")
	if ref.Intro != "" {
		b.WriteString(centerText(dimStyle.Render(ref.Intro), m.width))
		b.WriteString("\n")
	}
	if m.sess.AbsurdEdgeArmed() {
		b.WriteString("\n")
		b.WriteString(centerText(accentStyle.Render("THE ABSURD EDGE IS ARMED: everything is backwards"), m.width))
		b.WriteString("\n")
	}
	if m.sess.Modifiers().Inverted && !m.sess.AbsurdEdgeArmed() {
		b.WriteString("\n")
		b.WriteString(centerText(dangerStyle.Render("something is wrong with this case"), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.statusLine(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.introHelp()), m.width))

	return b.String()
}

// introHelp lists the keys that mean anything on the intro card for the
// active character.
func (m Model) introHelp() string {
	help := "Enter: begin"
	if m.sess.Character() == content.CharacterCravan {
		help += "  |  1: fourth wall  |  2: absurd edge"
	}
	return help
}

// viewMinigamePlay renders the active round plus the status line.
func (m Model) viewMinigamePlay() string {
	if m.game == nil {
		return centerText(dimStyle.Render("..."), m.width)
	}

	m.game.Render(m.screen)
	frame := RenderScreen(m.screen)

	status := m.statusLine()
	if m.sess.Transitioning() {
		status = dangerStyle.Render("PERDU ") + status
	}
	if m.sess.Modifiers().SlowMo {
		status += accentStyle.Render("  [insight]")
	}

	return frame + "\n" + status
}

// viewGlitchWin renders the corrupted victory card.
func (m Model) viewGlitchWin() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(accentStyle.Render("Y̴O̶U̷ ̸W̶I̴N̵"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("the scoreboard refuses to acknowledge this", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Enter: accept it"), m.width))
	return b.String()
}

// viewCaseOutro renders the case closing card, or Cravan's forced exit.
func (m Model) viewCaseOutro() string {
	var b strings.Builder
	c := m.sess.CurrentCase()

	b.WriteString("\n\n")
	if c != nil {
		b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("Case %d closed", c.ID)), m.width))
		b.WriteString("\n\n")
		outro := c.Outro
		if m.sess.ForcedOutro() != "" {
			outro = m.sess.ForcedOutro()
		}
		if outro != "" {
			b.WriteString(centerText(outro, m.width))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.statusLine(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: continue"), m.width))
	return b.String()
}

// viewFinalEnding renders the grand finale.
func (m Model) viewFinalEnding() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(titleStyle.Render("EVERY CASE IS CLOSED"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("dada siegt! the investigation concludes nothing, magnificently", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.statusLine(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: return"), m.width))
	return b.String()
}

// viewGameOver renders the game over card while the forced logout pends.
func (m Model) viewGameOver() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(dangerStyle.Render("G A M E   O V E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("final score %d", m.sess.Score()), m.width))
	return b.String()
}

// statusLine is the lives/score strip shown on most screens.
func (m Model) statusLine() string {
	hearts := strings.Repeat("♥", m.sess.Lives()) + strings.Repeat("·", session.StartingLives-m.sess.Lives())
	return fmt.Sprintf("%s  score %d", dangerStyle.Render(hearts), m.sess.Score())
}
