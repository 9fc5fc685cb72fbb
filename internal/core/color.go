package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Palette used by the trainer renderer.
const (
	ColorDefault Color = iota
	ColorUnit          // units being divided
	ColorUnitDim       // units fading into a container
	ColorContainer     // container outlines
	ColorHeadline      // problem text at the top
	ColorSuccess       // success banner
	ColorFailure       // failure banner
	ColorMessage       // failure computation
	ColorDigit         // answer pad digits
	ColorDigitActive   // selected digit
	ColorButton        // enabled confirm button
	ColorDisabled      // disabled confirm button, hints
)
