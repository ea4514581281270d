// Package export is the result sink half of the CLI boundary: it turns a
// stream of simulate.ResultRow values into CSV or JSON output. It is a
// concrete, dependency-backed home for the "result sink" external
// collaborator spec.md §6 describes but deliberately keeps out of the core.
//
// Both writers enforce the header-consistency contract spec.md §6 requires:
// the set and order of AlgoCost names in the first row written defines the
// header, and every subsequent row in the same sink must match it exactly.
package export
