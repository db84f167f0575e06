package abstractfactory

import "fmt"

// AlertStyle describes how a family presents an alert.
type AlertStyle string

const (
	AlertStyleSheet  AlertStyle = "sheet"
	AlertStyleWindow AlertStyle = "window"
)

// Alert is the product every family creates.
type Alert interface {
	Platform() Platform
	Style() AlertStyle
	Title() string
	Message() string
	SetContent(title, message string)

	// ContentView renders what the alert displays.
	ContentView() string
}

type alert struct {
	title   string
	message string
}

func (a *alert) Title() string {
	return a.title
}

func (a *alert) Message() string {
	return a.message
}

func (a *alert) SetContent(title, message string) {
	a.title = title
	a.message = message
}

// MobileAlert is presented as a sheet sliding over the current screen.
type MobileAlert struct {
	alert
}

// NewMobileAlert returns a mobile alert with empty content.
func NewMobileAlert() *MobileAlert {
	return &MobileAlert{}
}

// Platform implements Alert.
func (*MobileAlert) Platform() Platform {
	return PlatformMobile
}

// Style implements Alert.
func (*MobileAlert) Style() AlertStyle {
	return AlertStyleSheet
}

// ContentView implements Alert.
func (a *MobileAlert) ContentView() string {
	return fmt.Sprintf("[%s] %s\n%s", AlertStyleSheet, a.title, a.message)
}

// DesktopAlert is presented in its own window.
type DesktopAlert struct {
	alert
}

// NewDesktopAlert returns a desktop alert with empty content.
func NewDesktopAlert() *DesktopAlert {
	return &DesktopAlert{}
}

// Platform implements Alert.
func (*DesktopAlert) Platform() Platform {
	return PlatformDesktop
}

// Style implements Alert.
func (*DesktopAlert) Style() AlertStyle {
	return AlertStyleWindow
}

// ContentView implements Alert.
func (a *DesktopAlert) ContentView() string {
	return fmt.Sprintf("[%s] %s | %s", AlertStyleWindow, a.title, a.message)
}
