package filesystem

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"cognet/internal/domain"
)

// Front-matter delimiter: a line consisting solely of three dashes.
const metaMarker = "---"

var (
	inlineTagPattern = regexp.MustCompile(`#(\w+)`)
	wikiLinkPattern  = regexp.MustCompile(`\[\[(.*?)\]\]`)
)

// frontMatter holds the recognized front-matter keys; everything else in
// the block is ignored.
type frontMatter struct {
	title string
	tags  []string
}

// ParseNote extracts a note record from raw file content. It is a pure
// function of the content and filename: a malformed or unclosed
// front-matter block degrades to "no metadata" with the body left as the
// full raw text, and never fails the note.
func ParseNote(path, raw string) domain.Note {
	note := domain.Note{
		Path:  path,
		Title: domain.Stem(path),
		Body:  raw,
	}

	if block, body, ok := splitFrontMatter(raw); ok {
		note.HasMeta = true
		note.Body = body
		if fm, ok := decodeFrontMatter(block); ok {
			if fm.title != "" {
				note.Title = fm.title
			}
			note.Tags = appendUnique(note.Tags, fm.tags...)
		}
	}

	for _, m := range inlineTagPattern.FindAllStringSubmatch(note.Body, -1) {
		note.Tags = appendUnique(note.Tags, m[1])
	}
	for _, m := range wikiLinkPattern.FindAllStringSubmatch(note.Body, -1) {
		if m[1] != "" {
			note.Links = appendUnique(note.Links, m[1])
		}
	}

	return note
}

// splitFrontMatter splits raw text into the front-matter block and the
// body. The block must open with a marker line at position 0 and close
// with another marker line; without the closing marker the whole text is
// body.
func splitFrontMatter(raw string) (block, body string, ok bool) {
	if raw != metaMarker && !strings.HasPrefix(raw, metaMarker+"\n") && !strings.HasPrefix(raw, metaMarker+"\r\n") {
		return "", raw, false
	}

	rest := raw[len(metaMarker):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		rest = ""
	}

	lines := strings.SplitAfter(rest, "\n")
	offset := 0
	for _, line := range lines {
		if strings.TrimRight(line, "\r\n") == metaMarker {
			return rest[:offset], rest[offset+len(line):], true
		}
		offset += len(line)
	}
	return "", raw, false
}

// decodeFrontMatter parses the YAML block tolerantly: decode failures and
// unexpected shapes yield no metadata rather than an error.
func decodeFrontMatter(block string) (frontMatter, bool) {
	var meta map[string]any
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil || meta == nil {
		return frontMatter{}, false
	}

	var fm frontMatter
	if title, ok := meta["title"].(string); ok {
		fm.title = title
	}
	if list, ok := meta["tags"].([]any); ok {
		for _, item := range list {
			if tag, ok := item.(string); ok && tag != "" {
				fm.tags = append(fm.tags, tag)
			}
		}
	}
	return fm, true
}

// appendUnique appends values not already present, preserving order and
// dropping empty strings.
func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v == "" {
			continue
		}
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
