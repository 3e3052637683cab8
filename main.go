package main

import "github.com/alexiusacademia/canoecalc/cmd"

func main() {
	cmd.Execute()
}
