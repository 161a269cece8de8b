package utils

import "unicode/utf8"

// RuneOffsets maps every byte offset of src, including len(src), to the
// index of the rune containing it. Offsets inside a multi-byte rune map to
// that rune.
func RuneOffsets(src []byte) []int {
	offsets := make([]int, len(src)+1)
	runeIndex := 0
	for i := 0; i < len(src); {
		_, size := utf8.DecodeRune(src[i:])
		for k := 0; k < size; k++ {
			offsets[i+k] = runeIndex
		}
		i += size
		runeIndex++
	}
	offsets[len(src)] = runeIndex
	return offsets
}

// CaptureNameToStyleName maps a tree-sitter capture name to the value stored
// in the syntax attribute.
func CaptureNameToStyleName(captureName string) string {
	if len(captureName) > 0 && captureName[0] == '@' {
		captureName = captureName[1:]
	}
	return captureName
}
