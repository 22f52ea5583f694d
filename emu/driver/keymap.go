package driver

// KeyBinding maps a host keyboard character to a hex keypad index.
type KeyBinding struct {
	Char rune
	Key  int
}

// Layout is the 4x4 COSMAC VIP keypad laid over the left side of a QWERTY
// keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var Layout = [16]KeyBinding{
	{'1', 0x1}, {'2', 0x2}, {'3', 0x3}, {'4', 0xC},
	{'Q', 0x4}, {'W', 0x5}, {'E', 0x6}, {'R', 0xD},
	{'A', 0x7}, {'S', 0x8}, {'D', 0x9}, {'F', 0xE},
	{'Z', 0xA}, {'X', 0x0}, {'C', 0xB}, {'V', 0xF},
}
