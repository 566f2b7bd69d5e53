// export_test.go exports private functions for white-box testing.
package app

// RenderWith exports the private render method so tests can inject
// encoder and sink doubles.
var RenderWith = (*App).render
