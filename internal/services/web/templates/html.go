package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// attr is one HTML attribute. Attributes with an empty name are skipped so
// optional attributes can be expressed inline.
type attr struct {
	name  string
	value string
	bare  bool
}

type attrs []attr

var voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "link": true, "meta": true,
}

func at(name string, value string) attr {
	return attr{name: name, value: value}
}

// flagAttr renders a boolean attribute such as required or checked.
func flagAttr(name string, on bool) attr {
	if !on {
		return attr{}
	}
	return attr{name: name, bare: true}
}

func class(value string) attr {
	return at("class", value)
}

func href(value string) attr {
	return at("href", string(templ.URL(value)))
}

func src(value string) attr {
	return at("src", string(templ.URL(value)))
}

func action(value string) attr {
	return at("action", string(templ.URL(value)))
}

// el renders tag with attributes and children. Nil children are skipped.
func el(tag string, as attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		for _, a := range as {
			if a.name == "" {
				continue
			}
			out := " " + a.name
			if !a.bare {
				out += `="` + templ.EscapeString(a.value) + `"`
			}
			if _, err := io.WriteString(w, out); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

func text(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}

func group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}

func when(cond bool, c templ.Component) templ.Component {
	if !cond {
		return nil
	}
	return c
}

// children renders the component passed through templ.WithChildren.
func children() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		child := templ.GetChildren(ctx)
		if child == nil {
			return nil
		}
		return child.Render(templ.ClearChildren(ctx), w)
	})
}

func hidden(name string, value string) templ.Component {
	if value == "" {
		return nil
	}
	return el("input", attrs{at("type", "hidden"), at("name", name), at("value", value)})
}

func renderAll(ctx context.Context, w io.Writer, components []templ.Component) error {
	for _, c := range components {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
