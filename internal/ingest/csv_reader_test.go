package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		columns int
		want    []Row
	}{
		{
			name:    "pads short rows",
			input:   "a,b,c",
			columns: 5,
			want:    []Row{{"a", "b", "c", "", ""}},
		},
		{
			name:    "truncates long rows",
			input:   "a,b,c,d,e,f,g",
			columns: 5,
			want:    []Row{{"a", "b", "c", "d", "e"}},
		},
		{
			name:    "six columns",
			input:   "a,b,c,d,e,f,g",
			columns: 6,
			want:    []Row{{"a", "b", "c", "d", "e", "f"}},
		},
		{
			name:    "trailing comma keeps an empty column",
			input:   "a,b,",
			columns: 5,
			want:    []Row{{"a", "b", "", "", ""}},
		},
		{
			name:    "embedded newline inside quotes",
			input:   "http://x,Cat,,,\"line1\nline2\"",
			columns: 5,
			want:    []Row{{"http://x", "Cat", "", "", "line1\nline2"}},
		},
		{
			name:    "escaped quote",
			input:   `http://x,Cat,,,"say ""hi"" now"`,
			columns: 5,
			want:    []Row{{"http://x", "Cat", "", "", `say "hi" now`}},
		},
		{
			name:    "quoted comma",
			input:   `"a,b",c`,
			columns: 3,
			want:    []Row{{"a,b", "c", ""}},
		},
		{
			name:    "quote in the middle of a field",
			input:   `ab"c,d"e,f`,
			columns: 2,
			want:    []Row{{"abc,de", "f"}},
		},
		{
			name:    "blank records dropped",
			input:   "\n\na,b\n   \n\t\nc,d\n\n",
			columns: 2,
			want:    []Row{{"a", "b"}, {"c", "d"}},
		},
		{
			name:    "crlf line endings",
			input:   "a,b\r\nc,d\r\n",
			columns: 2,
			want:    []Row{{"a", "b"}, {"c", "d"}},
		},
		{
			name:    "crlf inside quotes becomes lf",
			input:   "a,\"x\r\ny\"\r\n",
			columns: 2,
			want:    []Row{{"a", "x\ny"}},
		},
		{
			name:    "byte order mark stripped",
			input:   "\ufeffa,b",
			columns: 2,
			want:    []Row{{"a", "b"}},
		},
		{
			name:    "unterminated quote absorbs the rest",
			input:   "a,\"open\nnext,row\nlast",
			columns: 3,
			want:    []Row{{"a", "open\nnext,row\nlast", ""}},
		},
		{
			name:    "non-ascii text",
			input:   "https://b23.tv/x,影视,电影,,\"好看的\n电影\"",
			columns: 5,
			want:    []Row{{"https://b23.tv/x", "影视", "电影", "", "好看的\n电影"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCSV(tt.input, tt.columns))
		})
	}
}

func TestParseCSV_Empty(t *testing.T) {
	assert.Empty(t, ParseCSV("", 5))
	assert.Empty(t, ParseCSV("\n  \n\n", 5))
}

func TestParseCSV_RowsAlwaysFixedWidth(t *testing.T) {
	input := "a\na,b\na,b,c,d,e,f,g,h\n\"x\ny\",z,\n"
	for _, columns := range []int{5, 6} {
		rows := ParseCSV(input, columns)
		require.Len(t, rows, 4)
		for _, r := range rows {
			assert.Len(t, r, columns)
		}
	}
}

func TestRowFit_DoesNotAlias(t *testing.T) {
	backing := make(Row, 2, 8)
	backing[0], backing[1] = "a", "b"
	extended := backing[:3]
	extended[2] = "keep"

	out := backing.fit(5)
	assert.Equal(t, Row{"a", "b", "", "", ""}, out)
	assert.Equal(t, "keep", extended[2])
}
