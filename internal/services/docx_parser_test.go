package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skinner/resume-feedback/internal/testutil"
)

func TestDOCXParserKeepsEmptyParagraphs(t *testing.T) {
	data := testutil.BuildDOCXParagraphs("Hello world", "", "Second paragraph")

	text, err := NewDOCXParser().ExtractText(data)

	require.NoError(t, err)
	assert.Equal(t, "Hello world\n\nSecond paragraph", text)
}

func TestDOCXParserParagraphContent(t *testing.T) {
	tests := []struct {
		name     string
		body     []string
		expected string
	}{
		{
			name: "multiple runs are concatenated",
			body: []string{
				`<w:p><w:r><w:t>Jane</w:t></w:r><w:r><w:t xml:space="preserve"> Doe</w:t></w:r></w:p>`,
			},
			expected: "Jane Doe",
		},
		{
			name: "tabs and breaks inside runs",
			body: []string{
				`<w:p><w:r><w:t>Name</w:t><w:tab/><w:t>Jane</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>`,
			},
			expected: "Name\tJane\nLine two",
		},
		{
			name: "paragraph property tabs are not text",
			body: []string{
				`<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t>Skills</w:t></w:r></w:p>`,
			},
			expected: "Skills",
		},
		{
			name: "hyperlink runs are included",
			body: []string{
				`<w:p><w:r><w:t xml:space="preserve">Site: </w:t></w:r><w:hyperlink><w:r><w:t>example.com</w:t></w:r></w:hyperlink></w:p>`,
			},
			expected: "Site: example.com",
		},
		{
			name: "table paragraphs are skipped",
			body: []string{
				testutil.DOCXParagraph("Before"),
				`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`,
				testutil.DOCXParagraph("After"),
			},
			expected: "Before\nAfter",
		},
		{
			name: "text boxes are not paragraph text",
			body: []string{
				`<w:p><w:r><w:t>Outer</w:t></w:r><w:r><mc:AlternateContent>` +
					`<mc:Choice Requires="wps"><w:drawing><wp:anchor><a:graphic><a:graphicData><wps:wsp><wps:txbx>` +
					`<w:txbxContent><w:p><w:r><w:t>BOX</w:t></w:r></w:p></w:txbxContent>` +
					`</wps:txbx></wps:wsp></a:graphicData></a:graphic></wp:anchor></w:drawing></mc:Choice>` +
					`<mc:Fallback><w:pict><v:shape><v:textbox>` +
					`<w:txbxContent><w:p><w:r><w:t>BOX</w:t></w:r></w:p></w:txbxContent>` +
					`</v:textbox></v:shape></w:pict></mc:Fallback>` +
					`</mc:AlternateContent></w:r></w:p>`,
				testutil.DOCXParagraph("Next"),
			},
			expected: "Outer\nNext",
		},
		{
			name:     "escaped characters",
			body:     []string{testutil.DOCXParagraph("R&D <lead>")},
			expected: "R&D <lead>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := NewDOCXParser().ExtractText(testutil.BuildDOCX(tt.body...))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestDOCXParserRejectsInvalidArchive(t *testing.T) {
	_, err := NewDOCXParser().ExtractText([]byte("definitely not a zip archive"))

	require.Error(t, err)
}

func TestBodyParagraphsMalformedXML(t *testing.T) {
	_, err := bodyParagraphs(`<w:document><w:body><w:p><w:r><w:t>open`)

	require.Error(t, err)
}
