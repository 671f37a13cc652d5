/*
Package page renders the application's single HTML page.

It exposes one pure function, Render, which substitutes a message string
into a fixed HTML skeleton: a doctype-less document with a UTF-8 charset
declaration, the title "Index", and the message displayed in a centered,
large-font block. The substitution is verbatim; no HTML escaping is
applied, so messages must come from trusted sources.
*/
package page
