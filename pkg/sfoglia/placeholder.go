package sfoglia

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// PlaceholderKind identifies which fallback panel a drawer renders when its
// path cannot resolve to a view.
type PlaceholderKind int

const (
	// PlaceholderNotFound is rendered when a drawer path matches no route.
	PlaceholderNotFound PlaceholderKind = iota

	// PlaceholderRoot is rendered when a drawer path is the literal root,
	// which can never be previewed: it would recursively host the same
	// navigation tree the drawer stack lives in.
	PlaceholderRoot
)

// Placeholder is the render content of a fallback panel. The drawer stays
// fully functional around it: it stacks, drags, and closes like any other.
type Placeholder struct {
	Kind   PlaceholderKind
	Title  string
	Detail string

	// Path is the offending path, shown for the not-found case.
	Path string
}

// messages localizes placeholder copy through a go-i18n bundle. Hosts that
// ship translations can add them to the bundle before rendering.
type messages struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

func newMessages(languages []string) *messages {
	bundle := i18n.NewBundle(language.English)
	return &messages{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, languages...),
	}
}

var (
	msgNotFoundTitle = &i18n.Message{
		ID:    "PlaceholderNotFoundTitle",
		Other: "Nothing to show here",
	}
	msgNotFoundDetail = &i18n.Message{
		ID:    "PlaceholderNotFoundDetail",
		Other: "No view is registered for {{.Path}}.",
	}
	msgRootTitle = &i18n.Message{
		ID:    "PlaceholderRootTitle",
		Other: "Cannot preview this page",
	}
	msgRootDetail = &i18n.Message{
		ID:    "PlaceholderRootDetail",
		Other: "The root page cannot open inside a drawer.",
	}
)

func (m *messages) notFound(path string) *Placeholder {
	return &Placeholder{
		Kind:  PlaceholderNotFound,
		Title: m.localizer.MustLocalize(&i18n.LocalizeConfig{DefaultMessage: msgNotFoundTitle}),
		Detail: m.localizer.MustLocalize(&i18n.LocalizeConfig{
			DefaultMessage: msgNotFoundDetail,
			TemplateData:   map[string]any{"Path": path},
		}),
		Path: path,
	}
}

func (m *messages) rootRejected() *Placeholder {
	return &Placeholder{
		Kind:   PlaceholderRoot,
		Title:  m.localizer.MustLocalize(&i18n.LocalizeConfig{DefaultMessage: msgRootTitle}),
		Detail: m.localizer.MustLocalize(&i18n.LocalizeConfig{DefaultMessage: msgRootDetail}),
	}
}
