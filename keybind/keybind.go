// Package keybind describes key bindings and matches them against tcell key
// events.
//
// Keys are written the way they appear in help text and config files:
// "j", "G", "enter", "pgdn", "ctrl+f", "shift+tab". Spellings such as
// "Escape", "PageDown", "Ctrl-C" or "Rune[q]" are accepted and normalized.
package keybind

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Keybind is a set of equivalent keys together with the help shown for them.
// A disabled keybind never matches and is left out of help output.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is the text shown for a keybind.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.SetHelp(key, desc)
	}
}

// WithDisabled creates a keybind that starts disabled.
func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

// SetKeys replaces the keys. Keys that normalize to nothing are dropped.
func (k *Keybind) SetKeys(keys ...string) {
	k.keys = k.keys[:0:0]
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			k.keys = append(k.keys, key)
		}
	}
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the keybind has keys and is not disabled.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event is one of the keys of an enabled keybind.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	key := eventKeyString(event)
	return slices.ContainsFunc(keybinds, func(k Keybind) bool {
		return k.Enabled() && slices.Contains(k.keys, key)
	})
}

// modifiers is a set of modifier keys. Its bit order is the order in which
// modifiers are written.
type modifiers uint8

const (
	modCtrl modifiers = 1 << iota
	modAlt
	modShift
	modMeta
)

var modifierNames = [...]string{"ctrl", "alt", "shift", "meta"}

func (m modifiers) prefix() string {
	var b strings.Builder
	for i, name := range modifierNames {
		if m&(1<<i) != 0 {
			b.WriteString(name)
			b.WriteByte('+')
		}
	}
	return b.String()
}

func parseModifier(s string) (modifiers, bool) {
	switch strings.ToLower(s) {
	case "ctrl", "control":
		return modCtrl, true
	case "alt":
		return modAlt, true
	case "shift":
		return modShift, true
	case "meta":
		return modMeta, true
	}
	return 0, false
}

func modifiersOf(mask tcell.ModMask) modifiers {
	var m modifiers
	if mask&tcell.ModCtrl != 0 {
		m |= modCtrl
	}
	if mask&tcell.ModAlt != 0 {
		m |= modAlt
	}
	if mask&tcell.ModShift != 0 {
		m |= modShift
	}
	if mask&tcell.ModMeta != 0 {
		m |= modMeta
	}
	return m
}

// normalizeKey returns the canonical spelling of a written key, or "" if it
// names no key.
func normalizeKey(key string) string {
	var (
		mods    modifiers
		primary string
	)
	for part := range strings.SplitSeq(key, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if m, ok := parseModifier(part); ok {
			mods |= m
			continue
		}
		primary = part
	}
	if primary == "" {
		return ""
	}

	m, primary := canonicalPrimary(primary)
	mods |= m
	// Modified letters are reported in lower case.
	if mods != 0 && utf8.RuneCountInString(primary) == 1 {
		primary = strings.ToLower(primary)
	}
	return mods.prefix() + primary
}

// canonicalPrimary maps the spellings of a key to its name. A dashed
// "Ctrl-X" is folded into the returned modifiers.
func canonicalPrimary(key string) (modifiers, string) {
	if inner, ok := strings.CutPrefix(key, "Rune["); ok && len(inner) > 1 && strings.HasSuffix(inner, "]") {
		return 0, strings.TrimSuffix(inner, "]")
	}
	if utf8.RuneCountInString(key) == 1 {
		return 0, key
	}

	lower := strings.ToLower(key)
	if rest, ok := strings.CutPrefix(lower, "ctrl-"); ok && rest != "" {
		return modCtrl, rest
	}
	switch lower {
	case "escape":
		return 0, "esc"
	case "return":
		return 0, "enter"
	case "pageup":
		return 0, "pgup"
	case "pagedown":
		return 0, "pgdn"
	case "backtab":
		return modShift, "tab"
	}
	return 0, lower
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyInsert:     "insert",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyF2:         "f2",
}

// eventKeyString returns the canonical spelling of the key event reports.
func eventKeyString(event *tcell.EventKey) string {
	key := event.Key()
	mods := modifiersOf(event.Modifiers())

	name, named := keyNames[key]
	switch {
	case named:
		if key == tcell.KeyBacktab {
			mods |= modShift
		}
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	case key <= tcell.KeyUS && mods&modCtrl != 0:
		// Raw control codes carry the lower case letter as their rune.
		return "ctrl+" + strings.ToLower(string(event.Rune()))
	case key == tcell.KeyRune:
		// Runes carry their case, shift is implied.
		mods &^= modShift
		name = string(event.Rune())
		if name == " " {
			name = "space"
		}
	default:
		return normalizeKey(event.Name())
	}
	return mods.prefix() + name
}
