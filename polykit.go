/*
Package polykit is a generic univariate polynomial arithmetic library over an
abstract numeric scalar type. It provides construction with automatic
normalization, addition, multiplication, Horner evaluation and Lagrange
interpolation, together with machine, integer and arbitrary-precision scalar
implementations.
*/
package polykit
