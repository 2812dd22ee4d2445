package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nmarks/rolo/internal/database/repository"
	"github.com/nmarks/rolo/internal/identity"
)

// badgeText is the avatar placeholder for a contact: initials from the
// name or email, or the fallback glyph when neither yields anything.
func badgeText(c repository.Contact) string {
	return identity.InitialsWithFallback(c.Name, c.Email)
}

// badgeColor is the stable background color for a contact's avatar.
// The hashed string is the field the initials came from, so renaming a
// contact recolors them but changing an unused email does not.
func badgeColor(c repository.Contact, palette identity.Palette) identity.Color {
	ident := identity.ColorIdentity(c.Name, c.Email)
	return palette.BackgroundColor(identity.ColorIndex(ident))
}

// renderBadge draws the two-cell avatar badge for a contact row.
func renderBadge(c repository.Contact, palette identity.Palette) string {
	color := badgeColor(c, palette)
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(color.Hex())).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true)
	return style.Render(fmt.Sprintf("%-2s", badgeText(c)))
}
