package terminal

import "unicode/utf8"

var legacySequenceKeys = map[string]KeyEvent{
	"\x1b[A":   {Key: KeyUp},
	"\x1b[B":   {Key: KeyDown},
	"\x1b[C":   {Key: KeyRight},
	"\x1b[D":   {Key: KeyLeft},
	"\x1bOA":   {Key: KeyUp},
	"\x1bOB":   {Key: KeyDown},
	"\x1bOC":   {Key: KeyRight},
	"\x1bOD":   {Key: KeyLeft},
	"\x1b[H":   {Key: KeyHome},
	"\x1bOH":   {Key: KeyHome},
	"\x1b[1~":  {Key: KeyHome},
	"\x1b[7~":  {Key: KeyHome},
	"\x1b[F":   {Key: KeyEnd},
	"\x1bOF":   {Key: KeyEnd},
	"\x1b[4~":  {Key: KeyEnd},
	"\x1b[8~":  {Key: KeyEnd},
	"\x1b[2~":  {Key: KeyInsert},
	"\x1b[3~":  {Key: KeyDelete},
	"\x1b[5~":  {Key: KeyPageUp},
	"\x1b[[5~": {Key: KeyPageUp},
	"\x1b[6~":  {Key: KeyPageDown},
	"\x1b[[6~": {Key: KeyPageDown},
	"\x1bOM":   {Key: KeyEnter},
	"\x1b[Z":   {Key: KeyTab, Mod: ModShift},

	"\x1b[a":  {Key: KeyUp, Mod: ModShift},
	"\x1b[b":  {Key: KeyDown, Mod: ModShift},
	"\x1b[c":  {Key: KeyRight, Mod: ModShift},
	"\x1b[d":  {Key: KeyLeft, Mod: ModShift},
	"\x1b[2$": {Key: KeyInsert, Mod: ModShift},
	"\x1b[3$": {Key: KeyDelete, Mod: ModShift},
	"\x1b[5$": {Key: KeyPageUp, Mod: ModShift},
	"\x1b[6$": {Key: KeyPageDown, Mod: ModShift},
	"\x1b[7$": {Key: KeyHome, Mod: ModShift},
	"\x1b[8$": {Key: KeyEnd, Mod: ModShift},

	"\x1bOa":  {Key: KeyUp, Mod: ModCtrl},
	"\x1bOb":  {Key: KeyDown, Mod: ModCtrl},
	"\x1bOc":  {Key: KeyRight, Mod: ModCtrl},
	"\x1bOd":  {Key: KeyLeft, Mod: ModCtrl},
	"\x1b[2^": {Key: KeyInsert, Mod: ModCtrl},
	"\x1b[3^": {Key: KeyDelete, Mod: ModCtrl},
	"\x1b[5^": {Key: KeyPageUp, Mod: ModCtrl},
	"\x1b[6^": {Key: KeyPageDown, Mod: ModCtrl},
	"\x1b[7^": {Key: KeyHome, Mod: ModCtrl},
	"\x1b[8^": {Key: KeyEnd, Mod: ModCtrl},

	"\x1bOP":   {Key: KeyF1},
	"\x1bOQ":   {Key: KeyF2},
	"\x1bOR":   {Key: KeyF3},
	"\x1bOS":   {Key: KeyF4},
	"\x1b[11~": {Key: KeyF1},
	"\x1b[12~": {Key: KeyF2},
	"\x1b[13~": {Key: KeyF3},
	"\x1b[14~": {Key: KeyF4},
	"\x1b[[A":  {Key: KeyF1},
	"\x1b[[B":  {Key: KeyF2},
	"\x1b[[C":  {Key: KeyF3},
	"\x1b[[D":  {Key: KeyF4},
	"\x1b[[E":  {Key: KeyF5},
	"\x1b[15~": {Key: KeyF5},
	"\x1b[17~": {Key: KeyF6},
	"\x1b[18~": {Key: KeyF7},
	"\x1b[19~": {Key: KeyF8},
	"\x1b[20~": {Key: KeyF9},
	"\x1b[21~": {Key: KeyF10},
	"\x1b[23~": {Key: KeyF11},
	"\x1b[24~": {Key: KeyF12},

	"\x1bb": {Key: KeyLeft, Mod: ModAlt},
	"\x1bf": {Key: KeyRight, Mod: ModAlt},
}

// ParseKey decodes one complete input sequence as read from a terminal in
// raw mode. It reports false for sequences that are not key presses, such as
// terminal replies or mouse reports.
func ParseKey(data string) (KeyEvent, bool) {
	if ev, ok := legacySequenceKeys[data]; ok {
		return ev, true
	}

	switch data {
	case "":
		return KeyEvent{}, false
	case "\x1b":
		return KeyEvent{Key: KeyEscape}, true
	case "\r", "\n":
		return KeyEvent{Key: KeyEnter}, true
	case "\t":
		return KeyEvent{Key: KeyTab}, true
	case "\x7f", "\x08":
		return KeyEvent{Key: KeyBackspace}, true
	case "\x00":
		return KeyEvent{Key: KeyRune, Rune: ' ', Mod: ModCtrl}, true
	case "\x1b\r":
		return KeyEvent{Key: KeyEnter, Mod: ModAlt}, true
	case "\x1b\x7f", "\x1b\b":
		return KeyEvent{Key: KeyBackspace, Mod: ModAlt}, true
	}

	if len(data) == 2 && data[0] == '\x1b' {
		code := data[1]
		if code >= 1 && code <= 26 {
			return KeyEvent{Key: KeyRune, Rune: rune(code + 96), Mod: ModCtrl | ModAlt}, true
		}
		if code >= 32 && code <= 126 {
			return withShift(KeyEvent{Key: KeyRune, Rune: rune(code), Mod: ModAlt}), true
		}
		return KeyEvent{}, false
	}

	if len(data) == 1 && data[0] >= 1 && data[0] <= 26 {
		return KeyEvent{Key: KeyRune, Rune: rune(data[0] + 96), Mod: ModCtrl}, true
	}

	r, size := utf8.DecodeRuneInString(data)
	if size != len(data) || r == utf8.RuneError || r < 32 || r == 0x7f {
		return KeyEvent{}, false
	}
	return withShift(KeyEvent{Key: KeyRune, Rune: r}), true
}

// withShift marks upper-case ASCII letters as shifted, the only shift
// information a legacy terminal sends for printable keys.
func withShift(ev KeyEvent) KeyEvent {
	if ev.Rune >= 'A' && ev.Rune <= 'Z' {
		ev.Mod |= ModShift
	}
	return ev
}
