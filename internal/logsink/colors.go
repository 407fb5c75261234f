package logsink

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles for console rendering. File output never uses them; files carry the
// plain Line form only.
var (
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F848E"))
	callerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
	tagStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	peerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	statusOKStyle       = lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0"))
	statusRedirectStyle = lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("0"))
	statusErrorStyle    = lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("0"))
	statusOtherStyle    = lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0"))

	methodReadStyle   = lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("0"))
	methodDeleteStyle = lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("0"))
	methodOtherStyle  = lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0"))
)

func levelStyle(ch Channel) lipgloss.Style {
	switch ch {
	case ChannelDebug:
		return debugStyle
	case ChannelInfo:
		return infoStyle
	case ChannelWarn:
		return warnStyle
	default:
		return errorStyle
	}
}

func colorStatus(status int) string {
	s := fmt.Sprintf(" %d ", status)
	switch status / 100 {
	case 2:
		return statusOKStyle.Render(s)
	case 3:
		return statusRedirectStyle.Render(s)
	case 4, 5:
		return statusErrorStyle.Render(s)
	default:
		return statusOtherStyle.Render(s)
	}
}

func colorMethod(method string) string {
	s := fmt.Sprintf(" %-6s ", method)
	switch method {
	case "GET", "POST":
		return methodReadStyle.Render(s)
	case "DELETE":
		return methodDeleteStyle.Render(s)
	default:
		return methodOtherStyle.Render(s)
	}
}
