// Package engine defines the contract between the completion pipeline and
// language-specific completion engines.
//
// An Engine enumerates candidate items for a document position, decides
// whether a typed character should trigger completion, produces rich
// descriptions for individual candidates, and exposes its rules (snippet
// trigger policy, potential commit characters) and its catalog of filter
// kinds. The pipeline owns everything else: trigger classification,
// asynchronous computation, UI mapping, and session state.
//
// Engines are external collaborators. The types in this package are the
// language-domain data model; candidates are read-only to the pipeline.
package engine
