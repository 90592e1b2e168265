// Package openapi describes a prompt catalog as an OpenAPI 3 document: one
// POST operation per prompt whose JSON request body carries the prompt's
// variables. Form generators can build variable forms from the result.
package openapi
