package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"accountdeck/internal/domain"
)

// Copy shown in the connection cards.
const (
	proxyTitle         = "Use custom proxy workers"
	proxyDescription   = "To make the application function, all traffic is routed through proxies. Enable this if you want to bring your own workers."
	proxyListTitle     = "Worker URLs"
	proxyEmpty         = "No workers yet, add one below"
	proxyAddLabel      = "Add new worker"
	proxyPlaceholder   = "https://"
	backendTitle       = "Custom server"
	backendDescription = "Account data is synced through a server. Enable this if you want to use your own backend."
	backendURLTitle    = "Custom server URL"
)

const (
	defaultConnectionsWidth = 60
	minConnectionsWidth     = 24
)

// FieldKind is a kind of focusable control in the connections panel.
type FieldKind int

// Focusable controls, in top to bottom order.
const (
	FieldNone FieldKind = iota
	FieldProxyToggle
	FieldProxyItem
	FieldProxyAdd
	FieldBackendToggle
	FieldBackendURL
)

// Field identifies one control. Index is only used by FieldProxyItem.
type Field struct {
	Kind  FieldKind
	Index int
}

// ConnectionsProps is the data the connections panel is drawn from.
type ConnectionsProps struct {
	ProxyURLs  domain.ProxyURLs
	BackendURL *string
	// Focus highlights one control.
	Focus Field
	// Input, when set, is drawn in place of the focused text field, so a
	// live text input can be shown while editing.
	Input string
	// Width of each card; zero picks a default.
	Width int
}

// Fields lists the controls that exist for the given state, top to bottom.
func Fields(proxy domain.ProxyURLs, backend *string) []Field {
	fields := []Field{{Kind: FieldProxyToggle}}
	if proxy != nil {
		for i := range proxy {
			fields = append(fields, Field{Kind: FieldProxyItem, Index: i})
		}
		fields = append(fields, Field{Kind: FieldProxyAdd})
	}
	fields = append(fields, Field{Kind: FieldBackendToggle})
	if backend != nil {
		fields = append(fields, Field{Kind: FieldBackendURL})
	}
	return fields
}

// ConnectionsPart renders the "Connections" section: a heading followed by
// the proxy worker card and the custom backend card. Widths below
// minConnectionsWidth are raised to it.
func ConnectionsPart(props ConnectionsProps) string {
	width := props.Width
	if width <= 0 {
		width = defaultConnectionsWidth
	}
	width = max(width, minConnectionsWidth)
	return lipgloss.JoinVertical(lipgloss.Left,
		styleHeading.Width(width).Render("Connections"),
		"",
		proxyCard(props, width),
		"",
		backendCard(props, width),
	)
}

func proxyCard(props ConnectionsProps, width int) string {
	inner := width - 6
	var b strings.Builder
	b.WriteString(cardHeader(proxyTitle, proxyDescription, props.ProxyURLs != nil,
		props.Focus.Kind == FieldProxyToggle, inner))

	if props.ProxyURLs != nil {
		b.WriteString("\n" + styleSubtle.Render(strings.Repeat("─", inner)) + "\n")
		b.WriteString(styleTitle.Render(proxyListTitle) + "\n\n")
		if len(props.ProxyURLs) == 0 {
			b.WriteString(proxyEmpty + "\n")
		}
		for i, u := range props.ProxyURLs {
			focused := props.Focus == Field{Kind: FieldProxyItem, Index: i}
			b.WriteString(textField(u, proxyPlaceholder, focused, props.Input, inner-4))
			b.WriteString(" " + styleRemove.Render("✕") + "\n")
		}
		b.WriteString("\n" + button(proxyAddLabel, props.Focus.Kind == FieldProxyAdd))
	}
	return card(b.String(), width, focusInProxy(props.Focus.Kind))
}

func backendCard(props ConnectionsProps, width int) string {
	inner := width - 6
	var b strings.Builder
	b.WriteString(cardHeader(backendTitle, backendDescription, props.BackendURL != nil,
		props.Focus.Kind == FieldBackendToggle, inner))

	if props.BackendURL != nil {
		b.WriteString("\n" + styleSubtle.Render(strings.Repeat("─", inner)) + "\n")
		b.WriteString(styleTitle.Render(backendURLTitle) + "\n\n")
		b.WriteString(textField(*props.BackendURL, "", props.Focus.Kind == FieldBackendURL, props.Input, inner))
	}
	return card(b.String(), width, props.Focus.Kind == FieldBackendToggle || props.Focus.Kind == FieldBackendURL)
}

func focusInProxy(k FieldKind) bool {
	return k == FieldProxyToggle || k == FieldProxyItem || k == FieldProxyAdd
}

func card(body string, width int, focused bool) string {
	style := styleCard
	if focused {
		style = styleCardFocused
	}
	return style.Width(width - 2).Render(strings.TrimRight(body, "\n"))
}

// cardHeader draws the title, description and toggle row of a card.
func cardHeader(title, description string, enabled, focused bool, width int) string {
	t := toggle(enabled, focused)
	textWidth := max(width-lipgloss.Width(t)-2, 1)
	text := lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render(title),
		styleSubtle.Width(textWidth).Render(description),
	)
	gap := strings.Repeat(" ", max(width-lipgloss.Width(text)-lipgloss.Width(t), 1))
	return lipgloss.JoinHorizontal(lipgloss.Center, text, gap, t) + "\n"
}

func toggle(enabled, focused bool) string {
	label := styleOff.Render("○ off")
	if enabled {
		label = styleOn.Render("● on")
	}
	if focused {
		return styleFocused.Render("[") + label + styleFocused.Render("]")
	}
	return " " + label + " "
}

// textField draws a single-line value. The live input replaces it when
// focused and set.
func textField(value, placeholder string, focused bool, input string, width int) string {
	marker := "  "
	if focused {
		marker = styleFocused.Render("> ")
		if input != "" {
			return marker + input
		}
	}
	shown := value
	style := lipgloss.NewStyle()
	if shown == "" {
		shown, style = placeholder, styleSubtle
	}
	return marker + style.MaxWidth(max(width-2, 1)).Render(shown)
}

func button(label string, focused bool) string {
	if focused {
		return styleFocused.Render("> ") + styleButton.Render(label)
	}
	return "  " + styleButton.Render(label)
}
