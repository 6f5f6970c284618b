package export

import (
	"bytes"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/SK-Digital/Note-App/internal/model"
)

// NoteToMarkdown renders a note as a standalone markdown document: the title
// as a level-one heading followed by the converted body. The note's content
// is the editor's serialized HTML.
func NoteToMarkdown(note model.Note) (string, error) {
	body, err := htmltomarkdown.ConvertString(note.Content)
	if err != nil {
		return "", fmt.Errorf("convert note content: %w", err)
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(note.Title)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String(), nil
}

// MarkdownImporter converts markdown documents into notes whose content is
// the rendered HTML the editor expects.
type MarkdownImporter struct {
	md goldmark.Markdown
}

// NewMarkdownImporter creates an importer with GFM extensions enabled.
func NewMarkdownImporter() *MarkdownImporter {
	return &MarkdownImporter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Strikethrough,
				extension.Linkify,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithUnsafe(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Import builds a new in-memory note from a markdown document. The note is
// not persisted; the caller saves it through the repository. A blank title
// keeps the placeholder from NewNote.
func (i *MarkdownImporter) Import(title, markdown, folderID string) (model.Note, error) {
	var buf bytes.Buffer
	if err := i.md.Convert([]byte(markdown), &buf); err != nil {
		return model.Note{}, fmt.Errorf("convert markdown: %w", err)
	}

	note := model.NewNote(folderID)
	if model.ValidTitle(title) {
		note.Title = strings.TrimSpace(title)
	}
	note.Content = buf.String()
	return note, nil
}
