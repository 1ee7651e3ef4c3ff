// Package tool wraps typed Go functions as JSON-in, JSON-out tools.
//
// [NewTool] binds a name and description to a handler of the form
// func(context.Context, I) (O, error). The resulting [Tool] satisfies
// [GenericTool], so tools of different types can be registered together in a
// [Catalog] and invoked by name with [Catalog.Call].
package tool
