// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// ErrUnknownKeyCode is returned when a key name does not match any KeyCode.
var ErrUnknownKeyCode = errors.New("settings: unknown key code")

// KeyCode identifies a physical key or mouse button a feature is bound to.
// It is stored in settings files by name.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyBackspace
	KeyDelete
	KeyTab
	KeyClear
	KeyReturn
	KeyPause
	KeyEscape
	KeySpace
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadPeriod
	KeyKeypadDivide
	KeyKeypadMultiply
	KeyKeypadMinus
	KeyKeypadPlus
	KeyKeypadEnter
	KeyKeypadEquals
	KeyUpArrow
	KeyDownArrow
	KeyRightArrow
	KeyLeftArrow
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyAlpha0
	KeyAlpha1
	KeyAlpha2
	KeyAlpha3
	KeyAlpha4
	KeyAlpha5
	KeyAlpha6
	KeyAlpha7
	KeyAlpha8
	KeyAlpha9
	KeyQuote
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEquals
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyBackQuote
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNumlock
	KeyCapsLock
	KeyScrollLock
	KeyRightShift
	KeyLeftShift
	KeyRightControl
	KeyLeftControl
	KeyRightAlt
	KeyLeftAlt
	KeyPrint
	KeyMouse0
	KeyMouse1
	KeyMouse2
)

type keyInfo struct {
	name string
	// term is the bubbletea key string, empty when a terminal cannot report the key
	term string
}

var keyTable = [...]keyInfo{
	KeyNone:           {name: "None"},
	KeyBackspace:      {"Backspace", "backspace"},
	KeyDelete:         {"Delete", "delete"},
	KeyTab:            {"Tab", "tab"},
	KeyClear:          {name: "Clear"},
	KeyReturn:         {"Return", "enter"},
	KeyPause:          {name: "Pause"},
	KeyEscape:         {"Escape", "esc"},
	KeySpace:          {"Space", " "},
	KeyKeypad0:        {"Keypad0", "0"},
	KeyKeypad1:        {"Keypad1", "1"},
	KeyKeypad2:        {"Keypad2", "2"},
	KeyKeypad3:        {"Keypad3", "3"},
	KeyKeypad4:        {"Keypad4", "4"},
	KeyKeypad5:        {"Keypad5", "5"},
	KeyKeypad6:        {"Keypad6", "6"},
	KeyKeypad7:        {"Keypad7", "7"},
	KeyKeypad8:        {"Keypad8", "8"},
	KeyKeypad9:        {"Keypad9", "9"},
	KeyKeypadPeriod:   {"KeypadPeriod", "."},
	KeyKeypadDivide:   {"KeypadDivide", "/"},
	KeyKeypadMultiply: {"KeypadMultiply", "*"},
	KeyKeypadMinus:    {"KeypadMinus", "-"},
	KeyKeypadPlus:     {"KeypadPlus", "+"},
	KeyKeypadEnter:    {"KeypadEnter", "enter"},
	KeyKeypadEquals:   {"KeypadEquals", "="},
	KeyUpArrow:        {"UpArrow", "up"},
	KeyDownArrow:      {"DownArrow", "down"},
	KeyRightArrow:     {"RightArrow", "right"},
	KeyLeftArrow:      {"LeftArrow", "left"},
	KeyInsert:         {"Insert", "insert"},
	KeyHome:           {"Home", "home"},
	KeyEnd:            {"End", "end"},
	KeyPageUp:         {"PageUp", "pgup"},
	KeyPageDown:       {"PageDown", "pgdown"},
	KeyF1:             {"F1", "f1"},
	KeyF2:             {"F2", "f2"},
	KeyF3:             {"F3", "f3"},
	KeyF4:             {"F4", "f4"},
	KeyF5:             {"F5", "f5"},
	KeyF6:             {"F6", "f6"},
	KeyF7:             {"F7", "f7"},
	KeyF8:             {"F8", "f8"},
	KeyF9:             {"F9", "f9"},
	KeyF10:            {"F10", "f10"},
	KeyF11:            {"F11", "f11"},
	KeyF12:            {"F12", "f12"},
	KeyAlpha0:         {"Alpha0", "0"},
	KeyAlpha1:         {"Alpha1", "1"},
	KeyAlpha2:         {"Alpha2", "2"},
	KeyAlpha3:         {"Alpha3", "3"},
	KeyAlpha4:         {"Alpha4", "4"},
	KeyAlpha5:         {"Alpha5", "5"},
	KeyAlpha6:         {"Alpha6", "6"},
	KeyAlpha7:         {"Alpha7", "7"},
	KeyAlpha8:         {"Alpha8", "8"},
	KeyAlpha9:         {"Alpha9", "9"},
	KeyQuote:          {"Quote", "'"},
	KeyComma:          {"Comma", ","},
	KeyMinus:          {"Minus", "-"},
	KeyPeriod:         {"Period", "."},
	KeySlash:          {"Slash", "/"},
	KeySemicolon:      {"Semicolon", ";"},
	KeyEquals:         {"Equals", "="},
	KeyLeftBracket:    {"LeftBracket", "["},
	KeyBackslash:      {"Backslash", "\\"},
	KeyRightBracket:   {"RightBracket", "]"},
	KeyBackQuote:      {"BackQuote", "`"},
	KeyA:              {"A", "a"},
	KeyB:              {"B", "b"},
	KeyC:              {"C", "c"},
	KeyD:              {"D", "d"},
	KeyE:              {"E", "e"},
	KeyF:              {"F", "f"},
	KeyG:              {"G", "g"},
	KeyH:              {"H", "h"},
	KeyI:              {"I", "i"},
	KeyJ:              {"J", "j"},
	KeyK:              {"K", "k"},
	KeyL:              {"L", "l"},
	KeyM:              {"M", "m"},
	KeyN:              {"N", "n"},
	KeyO:              {"O", "o"},
	KeyP:              {"P", "p"},
	KeyQ:              {"Q", "q"},
	KeyR:              {"R", "r"},
	KeyS:              {"S", "s"},
	KeyT:              {"T", "t"},
	KeyU:              {"U", "u"},
	KeyV:              {"V", "v"},
	KeyW:              {"W", "w"},
	KeyX:              {"X", "x"},
	KeyY:              {"Y", "y"},
	KeyZ:              {"Z", "z"},
	KeyNumlock:        {name: "Numlock"},
	KeyCapsLock:       {name: "CapsLock"},
	KeyScrollLock:     {name: "ScrollLock"},
	KeyRightShift:     {name: "RightShift"},
	KeyLeftShift:      {name: "LeftShift"},
	KeyRightControl:   {name: "RightControl"},
	KeyLeftControl:    {name: "LeftControl"},
	KeyRightAlt:       {name: "RightAlt"},
	KeyLeftAlt:        {name: "LeftAlt"},
	KeyPrint:          {name: "Print"},
	KeyMouse0:         {name: "Mouse0"},
	KeyMouse1:         {name: "Mouse1"},
	KeyMouse2:         {name: "Mouse2"},
}

var keyByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(keyTable))
	for i, k := range keyTable {
		m[k.name] = KeyCode(i)
	}
	return m
}()

// KeyCodes returns every defined KeyCode in declaration order.
func KeyCodes() []KeyCode {
	codes := make([]KeyCode, len(keyTable))
	for i := range keyTable {
		codes[i] = KeyCode(i)
	}
	return codes
}

// ParseKeyCode resolves an exact, case-sensitive key name.
func ParseKeyCode(name string) (KeyCode, error) {
	if k, ok := keyByName[name]; ok {
		return k, nil
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKeyCode, name)
}

// Valid reports whether k is a defined KeyCode.
func (k KeyCode) Valid() bool {
	return k >= 0 && int(k) < len(keyTable)
}

func (k KeyCode) String() string {
	if !k.Valid() {
		return "KeyCode(" + strconv.Itoa(int(k)) + ")"
	}
	return keyTable[k].name
}

// TerminalKey returns the bubbletea key string for k, or "" when the key
// cannot be observed from a terminal (modifiers, locks, mouse buttons).
func (k KeyCode) TerminalKey() string {
	if !k.Valid() {
		return ""
	}
	return keyTable[k].term
}

// Binding returns a key binding for k with the given help description.
// The binding is disabled when k has no terminal equivalent.
func (k KeyCode) Binding(desc string) key.Binding {
	term := k.TerminalKey()
	if term == "" {
		return key.NewBinding(key.WithDisabled(), key.WithHelp(k.String(), desc))
	}
	helpKey := term
	if term == " " {
		helpKey = "space"
	}
	return key.NewBinding(key.WithKeys(term), key.WithHelp(strings.ToLower(helpKey), desc))
}

func (k KeyCode) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKeyCode, int(k))
	}
	return []byte(keyTable[k].name), nil
}

func (k *KeyCode) UnmarshalText(text []byte) error {
	parsed, err := ParseKeyCode(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// KeyCodeCodec stores a KeyCode as its name.
type KeyCodeCodec struct{}

func (KeyCodeCodec) Name() string { return "keycode" }

func (KeyCodeCodec) Encode(k KeyCode) ([]byte, error) {
	name, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return []byte(strconv.Quote(string(name))), nil
}

func (KeyCodeCodec) Decode(data []byte) (KeyCode, error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return KeyNone, err
	}
	return ParseKeyCode(name)
}
