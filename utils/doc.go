// Package utils provides timestamp helpers shared by response formatters.
package utils
