// Package widget implements the settings engine shared by every theme widget.
//
// A widget declares an ordered Schema of Descriptors. The Engine draws the
// admin form for a stored Instance and turns a form Submission back into a
// sanitized Instance. Kinds outside the built-in set are handled by
// extensions registered on a Registry. Base bundles schema, engine and the
// output cache so concrete widgets only supply their Render step.
package widget
