// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	buttonWidth    = 130
	buttonHeight   = 32
)

// PanelAction — что игрок нажал на панели
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelSell
)

// InfoPanel — выезжающая снизу панель выбранной башни
type InfoPanel struct {
	IsVisible     bool
	target        gridmap.Point
	hasTarget     bool
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	UpgradeButton *Button
	SellButton    *Button
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face, titleFace font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		titleFontFace: titleFace,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade"),
		SellButton:    NewButton(image.Rectangle{}, "Sell"),
	}
}

func (p *InfoPanel) SetTarget(cell gridmap.Point) {
	p.target = cell
	p.hasTarget = true
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

// Target возвращает клетку выбранной башни
func (p *InfoPanel) Target() (gridmap.Point, bool) {
	return p.target, p.hasTarget
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update двигает панель к целевой высоте
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.hasTarget = false
	}
}

// Contains — клик попал в панель и не должен уходить на поле
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.rect())
}

// HandleClick возвращает действие по нажатой кнопке
func (p *InfoPanel) HandleClick(x, y int) PanelAction {
	if !p.IsVisible || !p.hasTarget {
		return PanelNone
	}
	switch {
	case p.UpgradeButton.Contains(x, y):
		return PanelUpgrade
	case p.SellButton.Contains(x, y):
		return PanelSell
	}
	return PanelNone
}

func (p *InfoPanel) rect() image.Rectangle {
	return image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
}

func (p *InfoPanel) layoutButtons(panel image.Rectangle) {
	top := panel.Max.Y - buttonHeight - 12
	sellLeft := panel.Max.X - buttonWidth - 12
	upgradeLeft := sellLeft - buttonWidth - 12
	p.UpgradeButton.Rect = image.Rect(upgradeLeft, top, upgradeLeft+buttonWidth, top+buttonHeight)
	p.SellButton.Rect = image.Rect(sellLeft, top, sellLeft+buttonWidth, top+buttonHeight)
}

// Draw рисует панель по снимку башни. view == nil — башню уже продали.
func (p *InfoPanel) Draw(screen *ebiten.Image, view *app.TowerView, money int) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	panel := p.rect()
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.DrawFilledRect(screen, float32(panel.Min.X), float32(panel.Min.Y), float32(panel.Dx()), float32(panel.Dy()), bgColor, true)
	vector.StrokeRect(screen, float32(panel.Min.X), float32(panel.Min.Y), float32(panel.Dx()), float32(panel.Dy()), 2, borderColor, true)
	if view == nil {
		return
	}

	def, ok := defs.Tower(view.Kind)
	if !ok {
		return
	}
	x := panel.Min.X + 15
	y := panel.Min.Y + 22
	text.Draw(screen, fmt.Sprintf("%s  lvl %d/%d", def.Name, view.Level, def.MaxLevel), p.titleFontFace, x, y, config.TextLightColor)
	y += lineHeight + 4
	text.Draw(screen, fmt.Sprintf("Attack: %d   Range: %.1f   Cooldown: %.1fs", view.Attack, view.Range, def.Cooldown), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	status := "ready"
	if view.Upgrading {
		status = fmt.Sprintf("upgrading %d%%", int(view.UpgradeFraction*100))
	} else if view.CooldownFraction > 0 {
		status = "reloading"
	}
	text.Draw(screen, "Status: "+status, p.fontFace, x, y, config.TextLightColor)

	p.layoutButtons(panel)
	p.UpgradeButton.Text = fmt.Sprintf("Upgrade (%d)", def.UpgradeCost)
	p.UpgradeButton.Disabled = view.Upgrading || view.Level >= def.MaxLevel || money < def.UpgradeCost
	p.SellButton.Text = "Sell"
	p.SellButton.Disabled = false

	cx, cy := ebiten.CursorPosition()
	p.UpgradeButton.Draw(screen, p.fontFace, cx, cy)
	p.SellButton.Draw(screen, p.fontFace, cx, cy)
}
