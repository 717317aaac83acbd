package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LoginScreen handles server URL and credentials input.
type LoginScreen struct {
	ServerURL string
	Username  string
	Password  string
	Error     string
	Busy      bool

	fieldIndex int // 0=server, 1=user, 2=pass, 3=connect button
	inputs     [3]TextInput
	labels     [3]string

	OnLogin func(screen *LoginScreen, server, user, pass string)
}

func NewLoginScreen(serverURL string, onLogin func(screen *LoginScreen, server, user, pass string)) *LoginScreen {
	ls := &LoginScreen{
		ServerURL: serverURL,
		OnLogin:   onLogin,
	}
	ls.inputs[0].SetText(serverURL)
	ls.labels = [3]string{"Server URL", "Username", "Password"}
	return ls
}

func (ls *LoginScreen) Name() string { return "Login" }
func (ls *LoginScreen) OnEnter()     {}
func (ls *LoginScreen) OnExit()      {}

func (ls *LoginScreen) Update() (*ScreenTransition, error) {
	if ls.Busy {
		return nil, nil
	}

	if ls.fieldIndex < 3 {
		ls.inputs[ls.fieldIndex].Update()
	}

	// Field navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ls.fieldIndex = (ls.fieldIndex + 1) % 4
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ls.fieldIndex--
		if ls.fieldIndex < 0 {
			ls.fieldIndex = 3
		}
	}

	// Submit
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ls.syncFields()
		if ls.fieldIndex == 3 || (ls.ServerURL != "" && ls.Username != "") {
			if ls.OnLogin != nil {
				ls.OnLogin(ls, ls.ServerURL, ls.Username, ls.Password)
			}
		}
	}

	return nil, nil
}

func (ls *LoginScreen) syncFields() {
	ls.ServerURL = ls.inputs[0].Text
	ls.Username = ls.inputs[1].Text
	ls.Password = ls.inputs[2].Text
}

func (ls *LoginScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)

	cx := float64(ScreenWidth) / 2
	cy := float64(ScreenHeight)/2 - 100

	DrawTextCentered(dst, "DimView", cx, cy-80, FontSizeTitle+8, ColorPrimary)
	DrawTextCentered(dst, "Connect to your Dim server", cx, cy-40, FontSizeBody, ColorTextSecondary)

	fieldW := float32(400)
	fieldH := float32(44)
	startY := float32(cy)

	for i := 0; i < 3; i++ {
		fy := startY + float32(i)*70
		fx := float32(cx) - fieldW/2

		DrawText(dst, ls.labels[i], float64(fx), float64(fy-20), FontSizeSmall, ColorTextSecondary)

		bgColor := ColorSurface
		if i == ls.fieldIndex {
			bgColor = ColorSurfaceHover
		}
		vector.DrawFilledRect(dst, fx, fy, fieldW, fieldH, bgColor, false)
		if i == ls.fieldIndex {
			vector.StrokeRect(dst, fx, fy, fieldW, fieldH, 2, ColorFocusBorder, false)
		}

		value := ls.inputs[i].Text
		if i == 2 && value != "" {
			value = strings.Repeat("•", utf8.RuneCountInString(value))
		}
		switch {
		case value == "" && i != ls.fieldIndex:
			DrawText(dst, ls.placeholders()[i], float64(fx+10), float64(fy+12), FontSizeBody, ColorTextMuted)
		case i == ls.fieldIndex && i != 2:
			DrawText(dst, ls.inputs[i].DisplayText(), float64(fx+10), float64(fy+12), FontSizeBody, ColorText)
		case i == ls.fieldIndex:
			DrawText(dst, value+"│", float64(fx+10), float64(fy+12), FontSizeBody, ColorText)
		default:
			DrawText(dst, value, float64(fx+10), float64(fy+12), FontSizeBody, ColorText)
		}
	}

	// Connect button
	btnY := startY + 3*70
	btnW := fieldW
	btnH := float32(48)
	bx := float32(cx) - btnW/2

	btnColor := ColorPrimary
	if ls.fieldIndex == 3 {
		btnColor = ColorPrimaryDark
	}
	vector.DrawFilledRect(dst, bx, btnY, btnW, btnH, btnColor, false)
	if ls.fieldIndex == 3 {
		vector.StrokeRect(dst, bx, btnY, btnW, btnH, 2, ColorFocusBorder, false)
	}
	label := "Connect"
	if ls.Busy {
		label = "Connecting..."
	}
	DrawTextCentered(dst, label, cx, float64(btnY+btnH/2), FontSizeBody, ColorText)

	if ls.Error != "" {
		DrawTextCentered(dst, ls.Error, cx, float64(btnY+btnH+30), FontSizeBody, ColorError)
	}
}

func (ls *LoginScreen) placeholders() [3]string {
	return [3]string{"https://dim.example.com", "username", "password"}
}
