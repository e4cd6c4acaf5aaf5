package mdcode_test

import (
	"testing"

	"github.com/ezerfernandes/md2py/internal/mdcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(blocks mdcode.Blocks) []string {
	res := make([]string, 0, len(blocks))
	for _, block := range blocks {
		res = append(res, string(block.Code))
	}

	return res
}

func TestUnfence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "no fences",
			source: "# Title\n\nJust prose.\n",
			want:   []string{},
		},
		{
			name:   "single block",
			source: "intro\n```python\nprint(\"a\")\n```\noutro\n",
			want:   []string{`print("a")`},
		},
		{
			name: "two blocks with prose between",
			source: "```python\nprint(\"a\")\n```\nunrelated text\n\n" +
				"```python\nprint(\"b\")\n```\n",
			want: []string{`print("a")`, `print("b")`},
		},
		{
			name:   "multi line body",
			source: "```python\ndef f():\n    return 1\n\nf()\n```\n",
			want:   []string{"def f():\n    return 1\n\nf()"},
		},
		{
			name:   "blank line before closing fence is kept",
			source: "```python\nx = 1\n\n```\n",
			want:   []string{"x = 1\n"},
		},
		{
			name:   "empty body",
			source: "```python\n```\n",
			want:   []string{""},
		},
		{
			name:   "other tags are ignored",
			source: "```ruby\nputs 1\n```\n```\nplain\n```\n```python3\nprint(3)\n```\n",
			want:   []string{},
		},
		{
			name:   "info string after tag is not matched",
			source: "```python title=x.py\nprint(1)\n```\n",
			want:   []string{},
		},
		{
			name:   "fence must start a line",
			source: "see ```python\nprint(1)\n```\n",
			want:   []string{},
		},
		{
			name:   "crlf line endings",
			source: "```python\r\nprint(1)\r\n```\r\ntext\r\n",
			want:   []string{"print(1)"},
		},
		{
			name: "non greedy match keeps blocks apart",
			source: "```python\na = 1\n```\n```ruby\nb = 2\n```\n" +
				"```python\nc = 3\n```\n",
			want: []string{"a = 1", "c = 3"},
		},
		{
			name:   "opening fence of another block does not close",
			source: "```python\na = 1\n```ruby\n```\n",
			want:   []string{"a = 1\n```ruby"},
		},
		{
			name:   "indented closing fence",
			source: "```python\nx = 1\n  ```\nprose\n```python\ny = 2\n```\n",
			want:   []string{"x = 1", "y = 2"},
		},
		{
			name:   "tab indented closing fence with trailing blanks",
			source: "```python\nx = 1\n\t``` \n",
			want:   []string{"x = 1"},
		},
		{
			name:   "unterminated block",
			source: "```python\nprint(1)\n",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks := mdcode.Unfence([]byte(tt.source), "python")

			assert.Equal(t, tt.want, codes(blocks))

			for _, block := range blocks {
				assert.Equal(t, "python", block.Lang)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	block := func(code string) *mdcode.Block {
		return &mdcode.Block{Lang: "python", Code: []byte(code)}
	}

	tests := []struct {
		name   string
		blocks mdcode.Blocks
		want   string
	}{
		{name: "nil", blocks: nil, want: ""},
		{name: "empty", blocks: mdcode.Blocks{}, want: ""},
		{name: "one", blocks: mdcode.Blocks{block("a")}, want: "a"},
		{name: "many", blocks: mdcode.Blocks{block("a"), block("b"), block("c")}, want: "a\nb\nc"},
		{name: "empty bodies", blocks: mdcode.Blocks{block(""), block("b")}, want: "\nb"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.blocks.Join("\n")

			require.NotNil(t, got)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
