package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/customtab/internal/domain/bundle"
	"github.com/felixgeelhaar/customtab/internal/domain/customtab"
	"github.com/felixgeelhaar/customtab/internal/domain/document"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how an inspection is rendered.
type OutputFormat string

// Output formats.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates an output format name.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(name)); f {
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	case "yml":
		return OutputYAML, nil
	default:
		return "", &document.UserError{
			Code:       document.ErrCodeFormatUnsupported,
			Message:    fmt.Sprintf("unsupported output format %q", name),
			Suggestion: "Use one of: text, json, yaml.",
		}
	}
}

// Render writes the inspection to the App's output.
func (a *App) Render(insp *Inspection, format OutputFormat) error {
	switch format {
	case OutputJSON:
		data, err := json.MarshalIndent(newInspectionView(insp), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode inspection: %w", err)
		}
		a.printf("%s\n", data)
	case OutputYAML:
		data, err := yaml.Marshal(newInspectionView(insp))
		if err != nil {
			return fmt.Errorf("failed to encode inspection: %w", err)
		}
		a.printf("%s", data)
	case OutputText, "":
		a.renderText(insp)
	default:
		_, err := ParseOutputFormat(string(format))
		return err
	}
	return nil
}

type textStyles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	yes     lipgloss.Style
	no      lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func (a *App) styles() textStyles {
	r := lipgloss.NewRenderer(a.out)
	return textStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"}),
		label:   r.NewStyle().Width(18),
		yes:     r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"}),
		no:      r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}),
		muted:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"}),
		warning: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"}),
	}
}

func (a *App) renderText(insp *Inspection) {
	s := a.styles()
	cfg := insp.Config
	row := func(label, value string) {
		a.printf("  %s%s\n", s.label.Render(label), value)
	}
	flag := func(on bool, yes, no string) string {
		if on {
			return s.yes.Render(yes)
		}
		return s.muted.Render(no)
	}

	a.printf("%s\n", s.title.Render("Custom Tab Inspection"))
	a.printf("%s\n\n", s.muted.Render(insp.Path))

	if insp.Recognized {
		row("Request", s.yes.Render("✓ Custom Tabs request"))
	} else {
		row("Request", s.no.Render("✗ not a Custom Tabs request"))
	}
	if insp.Action != "" {
		row("Action", insp.Action)
	}
	if insp.Data != "" {
		row("Data", insp.Data)
	}
	if cfg.SessionID != "" {
		row("Session", cfg.SessionID)
	}

	a.printf("\n")
	if cfg.HasToolbarColor() {
		swatch := lipgloss.NewRenderer(a.out).NewStyle().
			Background(lipgloss.Color(cfg.ToolbarColor.RGBHex())).
			Render("    ")
		row("Toolbar color", cfg.ToolbarColor.Hex()+" "+swatch)
	} else {
		row("Toolbar color", s.muted.Render("default"))
	}
	if cfg.CloseButtonIcon != nil {
		row("Close button", fmt.Sprintf("custom %dx%d", cfg.CloseButtonIcon.Width(), cfg.CloseButtonIcon.Height()))
	} else {
		row("Close button", s.muted.Render("default"))
	}
	row("URL bar hiding", flag(!cfg.DisableURLBarHiding, "enabled", "disabled"))
	row("Page title", flag(cfg.TitleVisible, "shown", "hidden"))
	row("Share item", flag(cfg.ShowShareMenuItem, "shown", "hidden"))

	if ab := cfg.ActionButton; ab != nil {
		row("Action button", fmt.Sprintf("%q %dx%d -> %s", ab.Description, ab.Icon.Width(), ab.Icon.Height(), describeIntent(ab.PendingIntent)))
	} else {
		row("Action button", s.muted.Render("none"))
	}

	if len(cfg.MenuItems) == 0 {
		row("Menu items", s.muted.Render("none"))
	} else {
		row("Menu items", fmt.Sprintf("%d", len(cfg.MenuItems)))
		for i, item := range cfg.MenuItems {
			a.printf("    %d. %s -> %s\n", i+1, item.Name, describeIntent(item.PendingIntent))
		}
	}

	if anim := cfg.ExitAnimation; anim != nil {
		row("Exit animation", fmt.Sprintf("%s enter=%d exit=%d", anim.PackageName, anim.EnterRes, anim.ExitRes))
	}

	if len(cfg.UnsupportedFeatures) > 0 {
		caser := cases.Title(language.English)
		names := make([]string, len(cfg.UnsupportedFeatures))
		for i, name := range cfg.UnsupportedFeatures {
			names[i] = caser.String(name)
		}
		a.printf("\n%s\n", s.warning.Render("⚠ Ignored: "+strings.Join(names, ", ")))
	}
}

func describeIntent(pi *bundle.PendingIntent) string {
	switch {
	case pi == nil:
		return "?"
	case pi.Action != "":
		return pi.Action
	case pi.ID != "":
		return pi.ID
	default:
		return "pending intent"
	}
}

func (a *App) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

// inspectionView is the JSON and YAML shape of an Inspection.
type inspectionView struct {
	Path       string      `json:"path" yaml:"path"`
	Action     string      `json:"action,omitempty" yaml:"action,omitempty"`
	Data       string      `json:"data,omitempty" yaml:"data,omitempty"`
	Recognized bool        `json:"recognized" yaml:"recognized"`
	Config     *configView `json:"config" yaml:"config"`
}

type configView struct {
	SessionID           string            `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	ToolbarColor        string            `json:"toolbar_color,omitempty" yaml:"toolbar_color,omitempty"`
	CloseButtonIcon     *iconView         `json:"close_button_icon,omitempty" yaml:"close_button_icon,omitempty"`
	DisableURLBarHiding bool              `json:"disable_url_bar_hiding" yaml:"disable_url_bar_hiding"`
	TitleVisible        bool              `json:"title_visible" yaml:"title_visible"`
	ShowShareMenuItem   bool              `json:"show_share_menu_item" yaml:"show_share_menu_item"`
	ActionButton        *actionButtonView `json:"action_button,omitempty" yaml:"action_button,omitempty"`
	MenuItems           []menuItemView    `json:"menu_items" yaml:"menu_items"`
	ExitAnimation       *exitAnimView     `json:"exit_animation,omitempty" yaml:"exit_animation,omitempty"`
	UnsupportedFeatures []string          `json:"unsupported_features,omitempty" yaml:"unsupported_features,omitempty"`
}

type iconView struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type actionButtonView struct {
	Description   string                `json:"description" yaml:"description"`
	Icon          iconView              `json:"icon" yaml:"icon"`
	PendingIntent *bundle.PendingIntent `json:"pending_intent" yaml:"pending_intent"`
}

type menuItemView struct {
	Name          string                `json:"name" yaml:"name"`
	PendingIntent *bundle.PendingIntent `json:"pending_intent" yaml:"pending_intent"`
}

type exitAnimView struct {
	PackageName string `json:"package_name,omitempty" yaml:"package_name,omitempty"`
	EnterRes    int    `json:"enter_res" yaml:"enter_res"`
	ExitRes     int    `json:"exit_res" yaml:"exit_res"`
}

func newInspectionView(insp *Inspection) inspectionView {
	return inspectionView{
		Path:       insp.Path,
		Action:     insp.Action,
		Data:       insp.Data,
		Recognized: insp.Recognized,
		Config:     newConfigView(insp.Config),
	}
}

func newConfigView(cfg *customtab.Config) *configView {
	v := &configView{
		SessionID:           cfg.SessionID,
		DisableURLBarHiding: cfg.DisableURLBarHiding,
		TitleVisible:        cfg.TitleVisible,
		ShowShareMenuItem:   cfg.ShowShareMenuItem,
		MenuItems:           make([]menuItemView, 0, len(cfg.MenuItems)),
		UnsupportedFeatures: cfg.UnsupportedFeatures,
	}
	if cfg.HasToolbarColor() {
		v.ToolbarColor = cfg.ToolbarColor.Hex()
	}
	if icon := cfg.CloseButtonIcon; icon != nil {
		v.CloseButtonIcon = &iconView{Width: icon.Width(), Height: icon.Height()}
	}
	if ab := cfg.ActionButton; ab != nil {
		v.ActionButton = &actionButtonView{
			Description:   ab.Description,
			Icon:          iconView{Width: ab.Icon.Width(), Height: ab.Icon.Height()},
			PendingIntent: ab.PendingIntent,
		}
	}
	for _, item := range cfg.MenuItems {
		v.MenuItems = append(v.MenuItems, menuItemView{Name: item.Name, PendingIntent: item.PendingIntent})
	}
	if anim := cfg.ExitAnimation; anim != nil {
		v.ExitAnimation = &exitAnimView{PackageName: anim.PackageName, EnterRes: anim.EnterRes, ExitRes: anim.ExitRes}
	}
	return v
}
