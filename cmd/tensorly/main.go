// Package main provides the tensorly command line interface.
package main

import "github.com/zhangyaqian0701/tensorly/cmd/tensorly/cmd"

func main() {
	cmd.Execute()
}
