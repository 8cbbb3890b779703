package main

import "github.com/jhoicas/facturador/internal/interfaces/cli"

func main() {
	cli.Execute()
}
