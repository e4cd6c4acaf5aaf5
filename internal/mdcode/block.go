package mdcode

import "bytes"

// Block is a fenced code block extracted from a Markdown document.
type Block struct {
	Lang string
	Code []byte
}

// Blocks is an ordered collection of code blocks, in document order.
type Blocks []*Block

// Join concatenates the code of all blocks, inserting sep between adjacent
// blocks. It returns an empty slice for an empty collection.
func (b Blocks) Join(sep string) []byte {
	if len(b) == 0 {
		return []byte{}
	}

	parts := make([][]byte, len(b))
	for i, block := range b {
		parts[i] = block.Code
	}

	return bytes.Join(parts, []byte(sep))
}
