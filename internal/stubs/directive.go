package stubs

import "github.com/getlawrence/autodoc/internal/domain"

// Rendering options, see https://mkdocstrings.github.io/python/usage/#globallocal-options

const functionOptions = `
    handler: python
    options:
      show_root_heading: true
      show_root_full_path : false
      show_object_full_path : true
      show_category_heading : false
      separate_signature : true
      heading_level : 1`

const classOptions = `
    handler: python
    options:
      show_root_heading: true
      show_root_full_path : false
      show_root_members_full_path : false
      show_object_full_path : true
      show_category_heading : true
      show_if_no_docstring : true
      merge_init_into_class : true
      separate_signature : true
      heading_level : 1`

// DirectivePrefix starts every generated stub
const DirectivePrefix = "::: "

// Directive returns the content of the stub documenting the importable path
func Directive(importPath string, kind domain.SymbolKind) string {
	content := DirectivePrefix + importPath
	switch kind {
	case domain.KindFunction:
		content += functionOptions
	case domain.KindClass:
		content += classOptions
	}
	return content
}
