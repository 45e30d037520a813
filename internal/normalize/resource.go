package normalize

import (
	"strings"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/model"
)

// NormalizeResources validates an untyped resources value into a list of
// well-formed links. Anything that is not an array yields an empty list;
// entries without a non-empty string title and url are discarded. Input order
// is preserved for the survivors.
func NormalizeResources(raw any) []model.Resource {
	out := []model.Resource{}
	items, ok := raw.([]any)
	if !ok {
		return out
	}

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title, ok := asString(obj["title"])
		if !ok {
			continue
		}
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		url, ok := asString(obj["url"])
		if !ok {
			continue
		}
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}

		var typ *string
		if t, ok := asString(obj["type"]); ok {
			typ = &t
		}
		out = append(out, model.Resource{Title: title, URL: url, Type: typ})
	}
	return out
}
