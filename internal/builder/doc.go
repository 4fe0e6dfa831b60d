/*
Package builder turns the format-agnostic configuration model into a ready
design space. It is the bridge between the 'config' package and the
'designspace' package.

Construction is a multi-phase process:

 1. Param Creation: every definition becomes a *param.Param. Nested and choice
    definitions are built recursively into their enclosing structural param.

 2. Registration: the top-level params are added to a fresh paramstore.Store,
    which indexes every nested ID.

 3. Finalization: designspace.New finalizes the store. It resolves references,
    rejects cycles and empty ranges, and computes the initialization waves.

Upon success the caller receives a *designspace.Space ready to generate
values and designs.
*/
package builder
