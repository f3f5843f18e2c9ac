// Package nodelink turns a street graph into a node-link view for
// visualization tools and the HTTP API.
//
// # Format
//
// A view has three top-level fields:
//
//	{
//	  "nodes": [
//	    {"id": "Boa Vista", "region": "1.1", "degree": 2, "center": true},
//	    {"id": "Derby", "region": "1.2", "degree": 1}
//	  ],
//	  "links": [
//	    {"source": "Boa Vista", "target": "Derby",
//	     "streets": ["Rua do Riachuelo", "Rua da Aurora"],
//	     "count": 2, "shortest": 350, "band": "short"}
//	  ],
//	  "meta": {"vertices": 2, "links": 1, "streets": 2}
//	}
//
// Parallel streets between the same pair of neighborhoods are merged into
// one link. Street names keep insertion order and the link points from the
// neighborhood declared first. A self-loop appears once with source
// equal to target.
//
// # Bands
//
// Each link is classified by its shortest street: "short" up to
// [Options.ShortMax] meters, "medium" up to [Options.MediumMax] and "long"
// beyond that. [DefaultOptions] uses 500 and 1500 meters.
//
// # Expansions
//
// [FromExpansion] builds the view of the neighborhoods within a hop bound of
// a center key. Only streets whose both ends are inside the expansion are
// kept, and the center node is flagged.
package nodelink
