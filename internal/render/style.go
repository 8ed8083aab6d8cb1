package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcp-tool-shop-org/websketch-ir/internal/core/domain"
)

// roleClass buckets roles for painting priority and colour.
type roleClass int

const (
	classNone roleClass = iota
	classPage
	classStructure
	classContainer
	classContent
	classInteractive
	classOverlay
)

// rolePriority orders painting: overlays float over interactive
// primitives, which float over containers and page structure.
func rolePriority(role domain.Role) int {
	return int(classOf(role))
}

func classOf(role domain.Role) roleClass {
	switch role {
	case domain.RolePage:
		return classPage
	case domain.RoleNav, domain.RoleHeader, domain.RoleFooter, domain.RoleSection:
		return classStructure
	case domain.RoleCard, domain.RoleList, domain.RoleTable, domain.RoleForm,
		domain.RolePagination:
		return classContainer
	case domain.RoleText, domain.RoleImage, domain.RoleIcon, domain.RoleUnknown:
		return classContent
	case domain.RoleInput, domain.RoleButton, domain.RoleLink,
		domain.RoleCheckbox, domain.RoleRadio:
		return classInteractive
	case domain.RoleModal, domain.RoleToast, domain.RoleDropdown:
		return classOverlay
	default:
		return classContent
	}
}

// Colour-mode styles, one per role class. ANSI 16-colour values keep
// the output legible on light and dark terminals.
var classStyles = map[roleClass]lipgloss.Style{
	classPage:        lipgloss.NewStyle().Faint(true),
	classStructure:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	classContainer:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	classContent:     lipgloss.NewStyle(),
	classInteractive: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	classOverlay:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
}

// styleLine renders one grid row, wrapping runs of equally-classed
// cells in their lipgloss style so the visible width stays equal to
// the grid width.
func styleLine(cells []rune, classes []roleClass) string {
	var b strings.Builder
	start := 0
	for start < len(cells) {
		end := start
		for end < len(cells) && classes[end] == classes[start] {
			end++
		}
		segment := string(cells[start:end])
		if style, ok := classStyles[classes[start]]; ok && classes[start] != classNone {
			segment = style.Render(segment)
		}
		b.WriteString(segment)
		start = end
	}
	return b.String()
}
