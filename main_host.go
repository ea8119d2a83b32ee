//go:build !wasm
// +build !wasm

package main

// Non-wasm builds only exist for tooling and tests; the contract entrypoints
// live behind the wasm tag.
func main() {

}
