package hcl

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/trainboot/internal/config"
)

// translateBody evaluates every top-level attribute of body without an
// evaluation context and collects the results in source order.
func translateBody(body hcl.Body) (*config.Document, hcl.Diagnostics) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	doc := config.NewDocument()
	for _, attr := range ordered {
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		doc.Set(attr.Name, val)
	}
	return doc, diags
}
